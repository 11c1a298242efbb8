package main

// The outer interpreter: a character-driven tokenizer that switches
// between three states (see InputState) as it feeds text to the inner
// interpreter. It never looks ahead -- every decision is made from the
// one character, or the one completed word, currently in hand.

// Eval feeds text to the outer interpreter, one character at a time,
// followed by a trailing NUL (matching the host contract's "until the
// trailing NUL" framing). Only the outermost call (not re-entered from
// within a host syscall) installs the abort landing pad and resets
// COMPILING/the stacks on a non-OK result.
func (vm *VM) Eval(text string) Result {
	vm.evalDepth++
	defer func() { vm.evalDepth-- }()

	if vm.evalDepth > 1 {
		vm.feedAll(text)
		return OK
	}

	result := vm.evalOutermost(text)
	if result != OK {
		vm.setCompiling(false)
		vm.setDStack(vm.stackBase)
		vm.setRStack(vm.rTop())
	}
	vm.out.Flush()
	return result
}

func (vm *VM) evalOutermost(text string) (result Result) {
	defer func() {
		// recover must be called directly by the deferred function, so the
		// abortSignal is unwrapped here rather than in a helper.
		switch e := recover().(type) {
		case nil:
		case abortSignal:
			result = e.result
		default:
			panic(e)
		}
	}()
	vm.feedAll(text)
	return OK
}

func (vm *VM) feedAll(text string) {
	for i := 0; i < len(text); i++ {
		vm.feedChar(text[i])
	}
	vm.feedChar(0)
}

// feedChar delivers one character to whichever state the outer
// interpreter is currently in.
func (vm *VM) feedChar(c byte) {
	switch vm.inputState {
	case PassChar:
		vm.inputState = Interpret
		vm.run([]byte{c})

	case PassWord:
		vm.accumulateWordChar(c)

	default: // Interpret
		if c == '"' && len(vm.tokBuf) == 0 {
			// Rewritten to the s" token, enabling conventional "..." syntax.
			vm.handleWord("s\"")
			return
		}
		if c == 0 || isSpace(c) {
			if len(vm.tokBuf) > 0 {
				buf := vm.tokBuf
				vm.tokBuf = vm.tokBuf[:0]
				vm.handleWord(string(buf))
			}
			return
		}
		if len(vm.tokBuf) < maxTokenLen {
			vm.tokBuf = append(vm.tokBuf, c)
		}
	}
}

// accumulateWordChar mirrors the INTERPRET token accumulator, but for a
// primitive that has requested a whole word via PassWord: once a
// delimiter, newline, or NUL completes the word, it resumes the deferred
// primitive with that word instead of looking it up.
func (vm *VM) accumulateWordChar(c byte) {
	if c == 0 || isSpace(c) {
		if len(vm.tokBuf) == 0 {
			return
		}
		buf := vm.tokBuf
		vm.tokBuf = vm.tokBuf[:0]
		vm.inputState = Interpret
		vm.run(buf)
		return
	}
	if len(vm.tokBuf) < maxTokenLen {
		vm.tokBuf = append(vm.tokBuf, c)
	}
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

// handleWord looks up buf in the dictionary and either compiles or
// executes it per the compilation rules (IMMEDIATE words always execute;
// POSTPONE forces the next word to compile regardless); a name that isn't
// found is tried as a number via the host's parser.
func (vm *VM) handleWord(buf string) {
	header, xt, found := vm.find(buf)
	if found {
		flags := vm.headerFlags(header)
		immediate := flags&flagImmediate != 0

		if vm.compiling() && (vm.postpone() || !immediate) {
			if flags&flagPrim != 0 {
				op, _ := vm.getCell(xt)
				vm.compile(op)
			} else {
				vm.compile(Cell(xt))
			}
			vm.setPostpone(false)
			return
		}
		vm.execute(xt)
		return
	}

	v, ok := vm.host.HostParseNum([]byte(buf))
	if !ok {
		vm.abort(NotAWord)
	}
	if vm.compiling() {
		vm.compile(Cell(opLit))
		vm.compile(v)
	} else {
		vm.push(v)
	}
}
