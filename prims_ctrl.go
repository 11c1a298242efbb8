package main

// Control-flow and threading primitives: exit/abort, inline literals,
// branches, and executing a first-class xt.

func init() {
	primFns[opExit] = func(vm *VM, _ []byte, _ bool) {
		vm.ip = vm.popr()
	}

	primFns[opAbort] = func(vm *VM, _ []byte, _ bool) {
		vm.abort(InternalError)
	}

	// lit: inline literal compiled right after the opcode.
	primFns[opLit] = func(vm *VM, _ []byte, _ bool) {
		v, n := vm.getCell(vm.ip)
		vm.ip += Addr(n)
		vm.push(v)
	}

	// lits: inline counted byte string. Pushes the address of the bytes
	// and skips ip past them; the compiler follows every lits with a
	// "lit length" so s" leaves (addr len) on the stack.
	primFns[opLits] = func(vm *VM, _ []byte, _ bool) {
		length, n := vm.getCell(vm.ip)
		vm.ip += Addr(n)
		vm.push(Cell(vm.ip))
		l, _ := asExactInt(length)
		vm.ip += Addr(l)
	}

	primFns[opJmp] = func(vm *VM, _ []byte, _ bool) {
		target, n := vm.getCell(vm.ip)
		vm.ip += Addr(n)
		vm.ip = Addr(int64(target))
	}

	primFns[opJmp0] = func(vm *VM, _ []byte, _ bool) {
		target, n := vm.getCell(vm.ip)
		vm.ip += Addr(n)
		if vm.pop() == 0 {
			vm.ip = Addr(int64(target))
		}
	}

	primFns[opExecute] = func(vm *VM, _ []byte, _ bool) {
		addr := vm.pop()
		vm.execute(Addr(int64(addr)))
	}
}
