package main

//go:generate go run scripts/gen_vm_expects.go -- vm_test.go vm_expects_test.go

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// vmCase is a small fluent builder around a VM + a source string, in the
// spirit of the example repos' test-case builders: chain with* calls to set
// up, then run to assert the result and any expectations.
type vmCase struct {
	name    string
	opts    []Option
	src     string
	want    Result
	expects []func(t *testing.T, vm *VM, out *bytes.Buffer)
}

func newCase(name, src string) vmCase {
	return vmCase{name: name, src: src}
}

// apply folds a chain of standalone wrapper funcs (the shape generated by
// scripts/gen_vm_expects.go) over c, letting a composite expectation be
// built up and reused across cases without repeating a method chain.
func (c vmCase) apply(wraps ...func(vmCase) vmCase) vmCase {
	for _, wrap := range wraps {
		c = wrap(c)
	}
	return c
}

func (c vmCase) withOptions(opts ...Option) vmCase {
	c.opts = append(c.opts, opts...)
	return c
}

func (c vmCase) expectResult(r Result) vmCase {
	c.want = r
	return c
}

func (c vmCase) expectStack(values ...Cell) vmCase {
	c.expects = append(c.expects, func(t *testing.T, vm *VM, _ *bytes.Buffer) {
		n := vm.dstackCount()
		require.Equal(t, len(values), n, "stack depth")
		for i, want := range values {
			got := vm.pick(len(values) - 1 - i)
			assert.Equal(t, want, got, "stack[%d]", i)
		}
	})
	return c
}

func (c vmCase) expectOutput(want string) vmCase {
	c.expects = append(c.expects, func(t *testing.T, _ *VM, out *bytes.Buffer) {
		assert.Equal(t, want, out.String())
	})
	return c
}

func (c vmCase) run(t *testing.T) {
	t.Helper()
	var out bytes.Buffer
	opts := append([]Option{WithHost(NewStdHost()), WithOutput(&out)}, c.opts...)
	vm := New(opts...)
	result := vm.Eval(c.src)
	assert.Equal(t, c.want, result, "eval(%q)", c.src)
	for _, expect := range c.expects {
		expect(t, vm, &out)
	}
}

func TestEvalArithmetic(t *testing.T) {
	newCase("add", "1 2 +").
		apply(expectVMResult(OK), expectVMStack(3)).
		run(t)
}

func TestEvalDefineAndCallWord(t *testing.T) {
	newCase("square", ": sq dup * ; 5 sq").
		expectResult(OK).
		expectStack(25).
		run(t)
}

func TestEvalDivisionByZero(t *testing.T) {
	newCase("div0", "10 0 /").
		expectResult(DivisionByZero).
		expectStack().
		run(t)
}

func TestEvalStackDump(t *testing.T) {
	newCase("dump", ": f 1 2 3 ; f .s").
		expectResult(OK).
		expectStack(1, 2, 3).
		expectOutput("<3> 3 2 1\n").
		run(t)
}

func TestEvalStringType(t *testing.T) {
	newCase(`s" hello" type`, `s" hello" type`).
		expectResult(OK).
		expectStack().
		expectOutput("hello").
		run(t)
}

func TestEvalWordCallingWord(t *testing.T) {
	newCase("compose", ": a 1 ; : b a a + ; b").
		expectResult(OK).
		expectStack(2).
		run(t)
}

func TestEvalOutsideMem(t *testing.T) {
	newCase("oob", "1000000 1 @@").
		expectResult(OutsideMem).
		expectStack().
		run(t)
}

func TestEvalTickExecute(t *testing.T) {
	vm := New(WithHost(NewStdHost()))
	r1 := vm.Eval(": w 7 ;")
	require.Equal(t, OK, r1)
	r2 := vm.Eval("' w execute")
	require.Equal(t, OK, r2)
	assert.Equal(t, Cell(7), vm.pick(0))

	vm2 := New(WithHost(NewStdHost()))
	require.Equal(t, OK, vm2.Eval(": w 7 ;"))
	require.Equal(t, OK, vm2.Eval("w"))
	assert.Equal(t, vm.pick(0), vm2.pick(0))
}

func TestAbortResetsStacksAndCompiling(t *testing.T) {
	vm := New(WithHost(NewStdHost()))
	result := vm.Eval(": bad 10 0 / ; bad")
	assert.Equal(t, DivisionByZero, result)
	assert.Zero(t, vm.dstackCount())
	assert.Zero(t, vm.rstackCount())
	assert.False(t, vm.compiling())
}

func TestWordsListExcludesHidden(t *testing.T) {
	vm := New(WithHost(NewStdHost()))
	words := vm.WordsList("", false)
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	assert.True(t, set["dup"])
	assert.True(t, set["+"])
	assert.False(t, set[",,"], "hidden primitive must not be listed")
	assert.False(t, set["@@"], "hidden primitive must not be listed")
}

func TestDefinedWordMatchesInlineBody(t *testing.T) {
	vm1 := New(WithHost(NewStdHost()))
	require.Equal(t, OK, vm1.Eval(": sq dup * ; 6 sq"))

	vm2 := New(WithHost(NewStdHost()))
	require.Equal(t, OK, vm2.Eval("6 dup *"))

	assert.Equal(t, vm2.pick(0), vm1.pick(0))
}
