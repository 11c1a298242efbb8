package main

// getBytes reads n bytes starting at addr, aborting OUTSIDE_MEM if the
// access would run past the arena.
func (vm *VM) getBytes(addr Addr, n int) []byte {
	buf := make([]byte, n)
	if err := vm.arena.LoadInto(uint32(addr), buf); err != nil {
		vm.abort(OutsideMem)
	}
	return buf
}

// putBytes writes buf starting at addr, aborting OUTSIDE_MEM if the access
// would run past the arena.
func (vm *VM) putBytes(addr Addr, buf []byte) {
	if err := vm.arena.Stor(uint32(addr), buf); err != nil {
		vm.abort(OutsideMem)
	}
}

func (vm *VM) getByte(addr Addr) byte {
	b, err := vm.arena.Load(uint32(addr))
	if err != nil {
		vm.abort(OutsideMem)
	}
	return b
}

// getCellTyped reads a cell of the given size at addr, returning the
// decoded value and the number of bytes consumed. Addresses below
// NumUserVars are redirected to the user-variable vector, independent of
// the requested size. An unrecognized size tag aborts INVALID_SIZE.
func (vm *VM) getCellTyped(addr Addr, size MemSize) (Cell, int) {
	if addr < NumUserVars {
		return Cell(vm.uv[addr]), 1
	}
	if size == SizeVAR {
		// Worst case window is 1 tag byte + a raw-width cell, but near the
		// top of the arena that full window may not exist even though the
		// actual encoded cell (1 or 2 bytes) fits; probe the first byte to
		// size the read precisely instead of always demanding the worst case.
		tag := vm.getByte(addr)
		n := 1
		switch {
		case tag == 0xFF:
			n = 1 + cellRawWidth
		case tag&0x80 != 0:
			n = 2
		}
		buf := vm.getBytes(addr, n)
		v, n2, ok := decodeVarCell(buf)
		if !ok {
			vm.abort(OutsideMem)
		}
		return v, n2
	}
	w := sizeWidth(size)
	if w < 0 {
		vm.abort(InvalidSize)
	}
	buf := vm.getBytes(addr, w)
	v, ok := decodeTypedCell(buf, size)
	if !ok {
		vm.abort(InvalidSize)
	}
	return v, w
}

// putCellTyped writes v at addr using the given size, returning the number
// of bytes written. Addresses below NumUserVars update the corresponding
// user variable instead of arena bytes.
func (vm *VM) putCellTyped(addr Addr, v Cell, size MemSize) int {
	if addr < NumUserVars {
		vm.uv[addr] = Addr(int64(v))
		return 0
	}
	if size == SizeVAR {
		buf := encodeVarCell(v)
		vm.putBytes(addr, buf)
		return len(buf)
	}
	buf, ok := encodeTypedCell(v, size)
	if !ok {
		vm.abort(InvalidSize)
	}
	vm.putBytes(addr, buf)
	return len(buf)
}

// getCell and putCell are the VAR-encoding convenience forms used
// pervasively by the dictionary and inner interpreter.
func (vm *VM) getCell(addr Addr) (Cell, int) { return vm.getCellTyped(addr, SizeVAR) }
func (vm *VM) putCell(addr Addr, v Cell) int { return vm.putCellTyped(addr, v, SizeVAR) }

// varCellSize reports how many bytes a variable-width encode of v at addr
// would take, honoring the uservar redirect (which consumes zero arena
// bytes).
func (vm *VM) varCellSize(addr Addr, v Cell) int {
	if addr < NumUserVars {
		return 0
	}
	return varCellLen(v)
}
