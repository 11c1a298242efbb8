package main

// Raw memory access primitives: typed fetch/store/append/length, with the
// size tag chosen by the caller at every call site (VAR, CELL, or a signed
// or unsigned fixed width). Addresses below NumUserVars redirect to the
// user-variable vector rather than arena bytes; that redirect lives in
// getCellTyped/putCellTyped, not here.

func init() {
	// @@ ( addr size -- v )
	primFns[opPeek] = func(vm *VM, _ []byte, _ bool) {
		size := MemSize(byte(int64(vm.pop())))
		addr := Addr(int64(vm.pop()))
		v, _ := vm.getCellTyped(addr, size)
		vm.push(v)
	}

	// !! ( v addr size -- )
	primFns[opPoke] = func(vm *VM, _ []byte, _ bool) {
		size := MemSize(byte(int64(vm.pop())))
		addr := Addr(int64(vm.pop()))
		v := vm.pop()
		vm.putCellTyped(addr, v, size)
	}

	// ,, ( v size -- ) appends at HERE with the given size.
	primFns[opComma] = func(vm *VM, _ []byte, _ bool) {
		size := MemSize(byte(int64(vm.pop())))
		v := vm.pop()
		vm.appendCellTyped(v, size)
	}

	// ## ( addr size -- bytes-consumed )
	primFns[opLen] = func(vm *VM, _ []byte, _ bool) {
		size := MemSize(byte(int64(vm.pop())))
		addr := Addr(int64(vm.pop()))
		_, n := vm.getCellTyped(addr, size)
		vm.push(Cell(n))
	}
}
