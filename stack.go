package main

// Both stacks are carved from a single shared region of the arena: the data
// stack grows up from stackBase, the return stack grows down from
// stackTop, and neither may cross the other -- enforced by the
// DSTACK < RSTACK invariant on every push.

// push pushes v onto the data stack.
func (vm *VM) push(v Cell) {
	d := vm.dstack()
	if d+cellRawWidth > vm.rstack() {
		vm.abort(DStackOverrun)
	}
	vm.putCellTyped(d, v, SizeCELL)
	vm.setDStack(d + cellRawWidth)
}

// pop pops and returns the top of the data stack.
func (vm *VM) pop() Cell {
	d := vm.dstack()
	if d <= vm.stackBase {
		vm.abort(DStackUnderrun)
	}
	d -= cellRawWidth
	v, _ := vm.getCellTyped(d, SizeCELL)
	vm.setDStack(d)
	return v
}

// pick peeks n cells down from the top of the data stack; n=0 is TOS.
func (vm *VM) pick(n int) Cell {
	addr := vm.dstack() - Addr((n+1)*cellRawWidth)
	if addr < vm.stackBase {
		vm.abort(DStackUnderrun)
	}
	v, _ := vm.getCellTyped(addr, SizeCELL)
	return v
}

// dstackCount returns the number of cells on the data stack.
func (vm *VM) dstackCount() int {
	return int(vm.dstack()-vm.stackBase) / cellRawWidth
}

// rTop is the fixed reference point for the return stack: the address of
// its single topmost cell slot, and the initial (empty-stack) value of
// RSTACK. The return stack grows down from here; the data stack grows up
// from stackBase below it.
func (vm *VM) rTop() Addr { return vm.stackTop - cellRawWidth }

// pushr pushes addr onto the return stack: it writes at the current free
// slot, then moves the pointer down by one cell.
func (vm *VM) pushr(v Addr) {
	r := vm.rstack()
	if r <= vm.dstack() {
		vm.abort(RStackOverrun)
	}
	vm.putCellTyped(r, Cell(v), SizeCELL)
	vm.setRStack(r - cellRawWidth)
}

// popr pops and returns the top of the return stack: it moves the pointer
// up by one cell, then reads the slot that lands on.
func (vm *VM) popr() Addr {
	r := vm.rstack()
	if r >= vm.rTop() {
		vm.abort(RStackUnderrun)
	}
	r += cellRawWidth
	v, _ := vm.getCellTyped(r, SizeCELL)
	vm.setRStack(r)
	return Addr(v)
}

// pickr peeks n cells down from the top of the return stack; n=0 is the
// most recently pushed return address.
func (vm *VM) pickr(n int) Addr {
	addr := vm.rstack() + Addr(n+1)*cellRawWidth
	if addr > vm.rTop() {
		vm.abort(RStackUnderrun)
	}
	v, _ := vm.getCellTyped(addr, SizeCELL)
	return Addr(v)
}

// rstackCount returns the number of cells on the return stack.
func (vm *VM) rstackCount() int {
	return int(vm.rTop()-vm.rstack()) / cellRawWidth
}
