package main

// Parsing, string, and block-memory primitives: the word tokenizer, the
// s" string-literal protocol, line/block comments, and the cmove/compare/
// search/atoi/atof family used to build a parser in Forth itself.

// cellStride is the unit "cells" multiplies by: one raw-width cell plus
// its leading size tag, matching the worst-case encoding a compiled cell
// can take.
const cellStride = cellRawWidth + 1

func init() {
	// word ( delim -- addr ) collects characters into PAD until delim,
	// newline, or NUL, returning the NUL-terminated PAD address.
	primFns[opWord] = func(vm *VM, input []byte, haveInput bool) {
		if !haveInput {
			vm.push(Cell(vm.pad()))
			vm.inputState = PassChar
			return
		}
		delim := byte(int64(vm.pick(1)))
		c := input[0]
		if c == delim || c == '\n' || c == 0 {
			vm.putBytes(vm.pad(), []byte{0})
			vm.setPad(vm.pad() + 1)
			addr := vm.pop()
			vm.pop() // discard delim
			vm.push(addr)
			vm.inputState = Interpret
			return
		}
		vm.putBytes(vm.pad(), []byte{c})
		vm.setPad(vm.pad() + 1)
		vm.inputState = PassChar
	}

	// _s" ( -- addr len ) immediate: in compile mode, emits lits plus the
	// string bytes followed by a trailing "lit len"; in interpret mode,
	// stages the string in PAD. Either way it terminates at an unescaped
	// closing quote.
	primFns[opStr] = func(vm *VM, input []byte, haveInput bool) {
		if !haveInput {
			if vm.compiling() {
				vm.compile(Cell(opLits))
				vm.appendRawCell(Cell(0)) // length placeholder, patched below
				vm.push(Cell(vm.here()))
			} else {
				vm.push(Cell(vm.pad()))
			}
			vm.inputState = PassChar
			return
		}

		c := input[0]
		if vm.compiling() && c == '"' && !lastByteIsBackslash(vm, vm.here()) {
			addr := Addr(int64(vm.pop()))
			length := vm.here() - addr
			lenAddr := addr - Addr(1+cellRawWidth)
			vm.putBytes(lenAddr, rawCellBytes(Cell(length)))
			vm.compile(Cell(opLit))
			vm.compile(Cell(length))
			vm.inputState = Interpret
			return
		}
		if !vm.compiling() && c == '"' && !lastByteIsBackslash(vm, vm.pad()) {
			addr := vm.pick(0)
			length := Cell(vm.pad()) - addr
			vm.push(length)
			vm.inputState = Interpret
			return
		}

		if vm.compiling() {
			vm.appendByte(c)
		} else {
			if vm.pad()+2 >= vm.padEnd {
				addr := Addr(int64(vm.pop()))
				length := vm.pad() - addr
				buf := vm.getBytes(addr, int(length))
				vm.setPad(vm.padBase)
				vm.push(Cell(vm.pad()))
				vm.putBytes(vm.pad(), buf)
				vm.setPad(vm.pad() + Addr(length))
			}
			vm.putBytes(vm.pad(), []byte{c})
			vm.setPad(vm.pad() + 1)
		}
		vm.inputState = PassChar
	}

	// _( ... ) nestable-free block comment: consumes characters to ')'.
	primFns[opComment] = func(vm *VM, input []byte, haveInput bool) {
		if !haveInput || input[0] != ')' {
			vm.inputState = PassChar
		} else {
			vm.inputState = Interpret
		}
	}

	// _\ to end-of-line comment.
	primFns[opComment2] = func(vm *VM, input []byte, haveInput bool) {
		if !haveInput || input[0] != '\n' {
			vm.inputState = PassChar
		} else {
			vm.inputState = Interpret
		}
	}

	// cmove ( src dst len -- )
	primFns[opCMove] = func(vm *VM, _ []byte, _ bool) {
		length, _ := asExactInt(vm.pop())
		dst := Addr(int64(vm.pop()))
		src := Addr(int64(vm.pop()))
		vm.putBytes(dst, vm.getBytes(src, int(length)))
	}

	// cells ( n -- n*stride )
	primFns[opCells] = func(vm *VM, _ []byte, _ bool) {
		n := vm.pop()
		vm.push(n * Cell(cellStride))
	}

	// alloc ( n -- addr ) reserves n+1 bytes in PAD, wrapping to padBase
	// when that would overflow.
	primFns[opAlloc] = func(vm *VM, _ []byte, _ bool) {
		size, _ := asExactInt(vm.pop())
		if vm.pad()+Addr(size)+1 >= vm.padEnd {
			vm.setPad(vm.padBase)
		}
		vm.push(Cell(vm.pad()))
		vm.setPad(vm.pad() + Addr(size) + 1)
	}

	// compare ( a2 l2 a1 l1 -- n ) lexicographic; differing lengths
	// compare unequal without reading either string.
	primFns[opCompare] = func(vm *VM, _ []byte, _ bool) {
		len1, _ := asExactInt(vm.pop())
		addr1 := Addr(int64(vm.pop()))
		len2, _ := asExactInt(vm.pop())
		addr2 := Addr(int64(vm.pop()))
		if len1 != len2 {
			vm.push(Cell(len1 - len2))
			return
		}
		s1 := vm.getBytes(addr1, int(len1))
		s2 := vm.getBytes(addr2, int(len1))
		vm.push(Cell(byteCompare(s1, s2)))
	}

	// search ( haystack l2 needle l1 -- pos-or-0 ) 1-based position.
	primFns[opSearch] = func(vm *VM, _ []byte, _ bool) {
		len1, _ := asExactInt(vm.pop())
		addr1 := Addr(int64(vm.pop()))
		len2, _ := asExactInt(vm.pop())
		addr2 := Addr(int64(vm.pop()))
		if len1 > len2 {
			vm.push(0)
			return
		}
		needle := vm.getBytes(addr1, int(len1))
		haystack := vm.getBytes(addr2, int(len2))
		for i := 0; i <= int(len2-len1); i++ {
			if bytesEqual(haystack[i:i+int(len1)], needle) {
				vm.push(Cell(i + 1))
				return
			}
		}
		vm.push(0)
	}

	primFns[opAtoi] = func(vm *VM, _ []byte, _ bool) {
		length, _ := asExactInt(vm.pop())
		addr := Addr(int64(vm.pop()))
		vm.push(Cell(atoiAt(vm, addr, int(length))))
	}

	primFns[opAtof] = func(vm *VM, _ []byte, _ bool) {
		length, _ := asExactInt(vm.pop())
		addr := Addr(int64(vm.pop()))
		vm.push(Cell(atofAt(vm, addr, int(length))))
	}
}

// lastByteIsBackslash reports whether the byte just before writeHead (the
// one most recently appended to a string being accumulated) is a backslash,
// letting \" escape a literal quote instead of closing the string.
func lastByteIsBackslash(vm *VM, writeHead Addr) bool {
	return writeHead > 0 && vm.getByte(writeHead-1) == '\\'
}

func byteCompare(a, b []byte) int {
	for i := range a {
		if a[i] != b[i] {
			return int(a[i]) - int(b[i])
		}
	}
	return 0
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	return byteCompare(a, b) == 0
}

// stringAt reads a byte region for atoi/atof: if length is 0, it scans
// forward from addr until a NUL byte, mirroring the source's
// strlen-on-the-arena fallback.
func stringAt(vm *VM, addr Addr, length int) string {
	if length == 0 {
		for a := addr; ; a++ {
			if vm.getByte(a) == 0 {
				length = int(a - addr)
				break
			}
		}
	}
	if length > 31 {
		length = 31
	}
	return string(vm.getBytes(addr, length))
}

func atoiAt(vm *VM, addr Addr, length int) int64 {
	s := stringAt(vm, addr, length)
	var neg bool
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}
	var v int64
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		v = v*10 + int64(s[i]-'0')
		i++
	}
	if neg {
		v = -v
	}
	return v
}

func atofAt(vm *VM, addr Addr, length int) float64 {
	s := stringAt(vm, addr, length)
	var neg bool
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}
	var v float64
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		v = v*10 + float64(s[i]-'0')
		i++
	}
	if i < len(s) && s[i] == '.' {
		i++
		frac := 0.1
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			v += float64(s[i]-'0') * frac
			frac /= 10
			i++
		}
	}
	if neg {
		v = -v
	}
	return v
}
