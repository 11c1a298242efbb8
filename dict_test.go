package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestVM() *VM {
	return New(WithHost(NewStdHost()))
}

func TestCreateFind(t *testing.T) {
	vm := newTestVM()
	header, xt := vm.create("myvar", 0)
	gotHeader, gotXT, ok := vm.find("myvar")
	require.True(t, ok)
	assert.Equal(t, header, gotHeader)
	assert.Equal(t, xt, gotXT)
}

func TestForgetRewindsHereAndLatest(t *testing.T) {
	vm := newTestVM()
	hereBefore := vm.here()
	latestBefore := vm.latest()

	vm.create("scratch", 0)
	require.NotEqual(t, hereBefore, vm.here())

	vm.forget("scratch")
	assert.Equal(t, hereBefore, vm.here())
	assert.Equal(t, latestBefore, vm.latest())

	_, _, ok := vm.find("scratch")
	assert.False(t, ok)
}

func TestForgetUnknownWordAborts(t *testing.T) {
	vm := newTestVM()
	result := vm.Eval("forget nonesuch")
	assert.Equal(t, NotAWord, result)
}

func TestImmediateWordRunsWhileCompiling(t *testing.T) {
	vm := newTestVM()
	// "postpone"-free immediate test: ; itself is immediate and must run
	// (closing the definition) rather than being compiled into the body.
	result := vm.Eval(": noop ; noop")
	require.Equal(t, OK, result)
	assert.Zero(t, vm.dstackCount())
}

func TestUserVariableAccessors(t *testing.T) {
	vm := newTestVM()
	// "h 0 @@" reads HERE through the bootstrapped user-variable word
	// (size 0 is SizeVAR), exercising the low-address redirect in
	// getCellTyped.
	result := vm.Eval("h 0 @@")
	require.Equal(t, OK, result)
	assert.Equal(t, Cell(vm.here()), vm.pick(0))
}

func TestWordCompiledAsPrimOpcodeNotXT(t *testing.T) {
	vm := newTestVM()
	require.Equal(t, OK, vm.Eval(": double dup + ;"))
	_, xt, ok := vm.find("double")
	require.True(t, ok)
	// The compiled body's first cell should be dup's *opcode*, not dup's
	// own xt, since dup is a PRIM-flagged word (see handleWord).
	code, _ := vm.getCell(xt)
	assert.Equal(t, Cell(opDup), code)
}
