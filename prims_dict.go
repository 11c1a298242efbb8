package main

// Dictionary-mutating primitives: defining words, flag setters, forget,
// and first-class-xt lookup. Several of these are deferred: they need the
// next word or raw character from the input stream and signal PassWord/
// PassChar on their first (input-less) dispatch.

func init() {
	// : ( "name" -- ) reads the next word, creates its header, and opens
	// compilation.
	primFns[opColon] = func(vm *VM, input []byte, haveInput bool) {
		if !haveInput {
			vm.inputState = PassWord
			return
		}
		vm.create(string(input), 0)
		vm.setCompiling(true)
		vm.inputState = Interpret
	}

	// ; ( -- ) immediate: closes the open definition.
	primFns[opSemicolon] = func(vm *VM, _ []byte, _ bool) {
		vm.compile(Cell(opExit))
		vm.setCompiling(false)
	}

	// create ( "name" -- ) like : but the new word's body just pushes its
	// own data-field address and returns, ready for words appended after
	// it with ",,". The literal is compiled at a fixed width (see
	// appendRawCell) so the data-field address can be computed before the
	// literal that stores it is written.
	primFns[opCreate] = func(vm *VM, input []byte, haveInput bool) {
		if !haveInput {
			vm.inputState = PassWord
			return
		}
		vm.create(string(input), 0)
		vm.compile(Cell(opLit))
		dataField := vm.here() + Addr(1+cellRawWidth) + 1 // raw lit cell + exit
		vm.appendRawCell(Cell(dataField))
		vm.compile(Cell(opExit))
		vm.inputState = Interpret
	}

	// forget ( "name" -- ) rewinds HERE/LATEST past name.
	primFns[opForget] = func(vm *VM, input []byte, haveInput bool) {
		if !haveInput {
			vm.inputState = PassWord
			return
		}
		vm.forget(string(input))
		vm.inputState = Interpret
	}

	primFns[opImmediate] = func(vm *VM, _ []byte, _ bool) { vm.makeImmediate() }
	primFns[opHidden] = func(vm *VM, _ []byte, _ bool) { vm.makeHidden() }

	// ' ( "name" -- xt )
	primFns[opTick] = func(vm *VM, input []byte, haveInput bool) {
		if !haveInput {
			vm.inputState = PassWord
			return
		}
		_, xt, ok := vm.find(string(input))
		if !ok {
			vm.abort(NotAWord)
		}
		vm.push(Cell(xt))
		vm.inputState = Interpret
	}

	// ['] reads an xt compiled inline right after its own opcode (by a
	// compile-time helper) and pushes it -- the compiled-literal-xt
	// counterpart to the runtime-resolving '.
	primFns[opTickC] = func(vm *VM, _ []byte, _ bool) {
		v, n := vm.getCell(vm.ip)
		vm.ip += Addr(n)
		vm.push(v)
	}

	// char ( "c..." -- c ) reads the next word and pushes its first byte.
	primFns[opChar] = func(vm *VM, input []byte, haveInput bool) {
		if !haveInput {
			vm.inputState = PassWord
			return
		}
		var b byte
		if len(input) > 0 {
			b = input[0]
		}
		vm.push(Cell(b))
		vm.inputState = Interpret
	}
}
