package main

// Data- and return-stack shuffling primitives.

func init() {
	primFns[opDrop] = func(vm *VM, _ []byte, _ bool) { vm.pop() }

	primFns[opDup] = func(vm *VM, _ []byte, _ bool) {
		a := vm.pop()
		vm.push(a)
		vm.push(a)
	}

	primFns[op2Dup] = func(vm *VM, _ []byte, _ bool) {
		b, a := vm.pop(), vm.pop()
		vm.push(a)
		vm.push(b)
		vm.push(a)
		vm.push(b)
	}

	primFns[opSwap] = func(vm *VM, _ []byte, _ bool) {
		d1, d2 := vm.pop(), vm.pop()
		vm.push(d1)
		vm.push(d2)
	}

	primFns[op2Swap] = func(vm *VM, _ []byte, _ bool) {
		d1, d2, d3, d4 := vm.pop(), vm.pop(), vm.pop(), vm.pop()
		vm.push(d2)
		vm.push(d1)
		vm.push(d4)
		vm.push(d3)
	}

	primFns[op2Over] = func(vm *VM, _ []byte, _ bool) {
		d4, d3, d2, d1 := vm.pop(), vm.pop(), vm.pop(), vm.pop()
		vm.push(d1)
		vm.push(d2)
		vm.push(d3)
		vm.push(d4)
		vm.push(d1)
		vm.push(d2)
	}

	primFns[opTuck] = func(vm *VM, _ []byte, _ bool) {
		d1, d2 := vm.pop(), vm.pop()
		vm.push(d1)
		vm.push(d2)
		vm.push(d1)
	}

	primFns[op2Tuck] = func(vm *VM, _ []byte, _ bool) {
		d4, d3, d2, d1 := vm.pop(), vm.pop(), vm.pop(), vm.pop()
		vm.push(d3)
		vm.push(d4)
		vm.push(d1)
		vm.push(d2)
		vm.push(d3)
		vm.push(d4)
	}

	primFns[opRot] = func(vm *VM, _ []byte, _ bool) {
		d1, d2, d3 := vm.pop(), vm.pop(), vm.pop()
		vm.push(d2)
		vm.push(d1)
		vm.push(d3)
	}

	primFns[opPick] = func(vm *VM, _ []byte, _ bool) {
		n, _ := asExactInt(vm.pop())
		vm.push(vm.pick(int(n)))
	}

	primFns[opPushR] = func(vm *VM, _ []byte, _ bool) {
		v := vm.pop()
		vm.pushr(Addr(int64(v)))
	}

	primFns[opPopR] = func(vm *VM, _ []byte, _ bool) {
		vm.push(Cell(vm.popr()))
	}

	primFns[opPickr] = func(vm *VM, _ []byte, _ bool) {
		n, _ := asExactInt(vm.pop())
		vm.push(Cell(vm.pickr(int(n))))
	}
}
