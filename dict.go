package main

// Word header flag bits.
const (
	flagImmediate byte = 1 << 6
	flagPrim      byte = 1 << 5
	flagHidden    byte = 1 << 4
)

// checkDictSpace aborts OUTSIDE_DICT if appending n more bytes at HERE
// would run past the dictionary region.
func (vm *VM) checkDictSpace(n int) {
	if vm.here()+Addr(n) > vm.dictEnd {
		vm.abort(OutsideDict)
	}
}

// appendByte compiles a single raw byte at HERE, advancing it.
func (vm *VM) appendByte(b byte) Addr {
	vm.checkDictSpace(1)
	addr := vm.here()
	vm.putBytes(addr, []byte{b})
	vm.setHere(addr + 1)
	return addr
}

// appendBytes compiles raw bytes at HERE, advancing it.
func (vm *VM) appendBytes(buf []byte) Addr {
	vm.checkDictSpace(len(buf))
	addr := vm.here()
	vm.putBytes(addr, buf)
	vm.setHere(addr + Addr(len(buf)))
	return addr
}

// compile appends v to the open definition as a variable-width cell,
// advancing HERE. This is the primitive building block behind both
// literal compilation and non-PRIM word-call compilation.
func (vm *VM) compile(v Cell) Addr {
	vm.checkDictSpace(varCellLen(v))
	addr := vm.here()
	n := vm.putCell(addr, v)
	vm.setHere(addr + Addr(n))
	return addr
}

// appendCellTyped compiles v at HERE using the given size tag (VAR or a
// fixed-width typed size), advancing HERE by however many bytes that took.
// Used by the ",," primitive, which lets Forth code choose the on-disk
// representation of a compiled value.
func (vm *VM) appendCellTyped(v Cell, size MemSize) Addr {
	addr := vm.here()
	if size == SizeVAR {
		vm.checkDictSpace(varCellLen(v))
	} else if w := sizeWidth(size); w < 0 {
		vm.abort(InvalidSize)
	} else {
		vm.checkDictSpace(w)
	}
	n := vm.putCellTyped(addr, v, size)
	vm.setHere(addr + Addr(n))
	return addr
}

// appendRawCell compiles v using the fixed 1-tag-byte-plus-raw-width
// encoding unconditionally, bypassing the variable-width optimization. It
// exists for the rare case (see the create primitive) where the compiled
// value depends on the address that follows it: forcing a fixed width lets
// the caller predict that address before the value to store there is known.
func (vm *VM) appendRawCell(v Cell) Addr {
	return vm.appendBytes(rawCellBytes(v))
}

// create appends a new word header (flags, link, NUL-terminated name) at
// HERE, links it onto LATEST, and returns the header address and the
// execution token (the address of the first body byte).
func (vm *VM) create(name string, flags byte) (header, xt Addr) {
	header = vm.here()
	vm.compile(Cell(flags))
	vm.compile(Cell(vm.latest()))
	nameBytes := make([]byte, len(name)+1)
	copy(nameBytes, name)
	vm.appendBytes(nameBytes)
	xt = vm.here()
	vm.setLatest(header)
	return header, xt
}

// readHeader decodes the header at w, returning its flags, link, name, and
// the address just past the NUL (the xt).
func (vm *VM) readHeader(w Addr) (flags byte, link Addr, name string, xt Addr) {
	fcell, n1 := vm.getCell(w)
	lcell, n2 := vm.getCell(w + Addr(n1))
	flags = byte(int64(fcell))
	link = Addr(int64(lcell))

	addr := w + Addr(n1) + Addr(n2)
	var sb []byte
	for {
		b := vm.getByte(addr)
		addr++
		if b == 0 {
			break
		}
		sb = append(sb, b)
	}
	return flags, link, string(sb), addr
}

// find walks the LATEST chain looking for an exact name match, returning
// the header address and xt on a hit.
func (vm *VM) find(name string) (header, xt Addr, ok bool) {
	for w := vm.latest(); w != 0; {
		flags, link, nm, bodyAddr := vm.readHeader(w)
		_ = flags
		if nm == name {
			return w, bodyAddr, true
		}
		w = link
	}
	return 0, 0, false
}

func (vm *VM) headerFlags(header Addr) byte {
	fcell, _ := vm.getCell(header)
	return byte(int64(fcell))
}

func (vm *VM) setFlagBit(header Addr, bit byte) {
	flags := vm.headerFlags(header) | bit
	vm.putCell(header, Cell(flags))
}

// makeImmediate flags LATEST as IMMEDIATE: it runs even while compiling.
func (vm *VM) makeImmediate() { vm.setFlagBit(vm.latest(), flagImmediate) }

// makeHidden flags LATEST as HIDDEN: it is skipped by introspection and
// word listings, though still reachable by find for internal use.
func (vm *VM) makeHidden() { vm.setFlagBit(vm.latest(), flagHidden) }

// forget rewinds HERE and LATEST to erase name and everything defined
// after it.
func (vm *VM) forget(name string) {
	header, _, ok := vm.find(name)
	if !ok {
		vm.abort(NotAWord)
	}
	_, link, _, _ := vm.readHeader(header)
	vm.setHere(header)
	vm.setLatest(link)
}
