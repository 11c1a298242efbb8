package main

import "sort"

// opName finds the dictionary word identified by addr -- a primitive
// opcode, a header address, or an xt -- walking LATEST to find it, for use
// in trace output and disassembly. Returns "?" if nothing matches.
func (vm *VM) opName(addr Addr) string {
	for w := vm.latest(); w != 0; {
		flags, link, name, xt := vm.readHeader(w)
		if flags&flagPrim != 0 {
			op, _ := vm.getCell(xt)
			if Addr(int64(op)) == addr {
				return name
			}
		}
		if addr == w || addr == xt {
			return name
		}
		w = link
	}
	return "?"
}

// WordsCount returns how many (non-hidden) dictionary words match prefix;
// an empty prefix matches everything.
func (vm *VM) WordsCount(prefix string) int {
	count := 0
	for w := vm.latest(); w != 0; {
		flags, link, name, _ := vm.readHeader(w)
		if flags&flagHidden == 0 && hasPrefix(name, prefix) {
			count++
		}
		w = link
	}
	return count
}

// WordsList returns the (non-hidden) dictionary words matching prefix, most
// recently defined first, optionally sorted and de-duplicated.
func (vm *VM) WordsList(prefix string, sorted bool) []string {
	var words []string
	for w := vm.latest(); w != 0; {
		flags, link, name, _ := vm.readHeader(w)
		if flags&flagHidden == 0 && hasPrefix(name, prefix) {
			words = append(words, name)
		}
		w = link
	}
	if !sorted {
		return words
	}
	sort.Strings(words)
	out := words[:0]
	var last string
	haveLast := false
	for _, w := range words {
		if haveLast && w == last {
			continue
		}
		out = append(out, w)
		last, haveLast = w, true
	}
	return out
}

func hasPrefix(name, prefix string) bool {
	if len(prefix) == 0 {
		return true
	}
	if len(name) < len(prefix) {
		return false
	}
	return name[:len(prefix)] == prefix
}

// FreeMem reports the bytes of headroom left across the dictionary, the
// pad, and the gap between the two stack pointers.
func (vm *VM) FreeMem() int {
	return int(vm.dictEnd-vm.here()) + int(vm.stackBase-vm.pad()) + int(vm.rstack()-vm.dstack())
}

// Dump returns the entire arena, for host-side persistence (save/restore a
// whole session) or debugging.
func (vm *VM) Dump() []byte {
	return vm.arena.Bytes()
}

// Disassemble finds name and prints its compiled body one opcode/xt at a
// time, resolving each to a word name via opName, until it hits EXIT.
func (vm *VM) Disassemble(name string) {
	_, xt, ok := vm.find(name)
	if !ok {
		vm.abort(NotAWord)
	}
	addr := xt
	for {
		d, n := vm.getCell(addr)
		op := int64(d)
		vm.host.HostPrint(vm, "%d/%s ", Addr(op), vm.opName(Addr(op)))
		addr += Addr(n)
		if op == opExit {
			break
		}
		switch op {
		case opLit, opJmp, opJmp0:
			lit, ln := vm.getCell(addr)
			vm.host.HostPrint(vm, "%d ", int64(lit))
			addr += Addr(ln)
		case opLits:
			length, ln := vm.getCell(addr)
			addr += Addr(ln)
			l, _ := asExactInt(length)
			vm.host.HostPrint(vm, "%q ", string(vm.getBytes(addr, int(l))))
			addr += Addr(l)
		}
	}
	vm.host.HostPrint(vm, "\n")
}
