/* Package main implements a minimal, self-hosting Forth virtual machine.

The VM is a single address space -- an arena -- divided into a block of
user variables, a dictionary of threaded words, a scratch pad, and two
cell stacks, driven by an inner interpreter (threaded bytecode dispatch)
and an outer interpreter (a character-at-a-time tokenizer that switches
between compiling new definitions and executing existing ones).

It favors robustness against malformed input over peak speed, and is
sized to run in an address space of a few tens of kilobytes: the whole
runtime plus a user's dictionary is meant to fit in an embedded-class
environment such as a calculator or microcontroller. The host embedding
this VM supplies number parsing and a syscall dispatch table; the VM
itself never touches a file system, a terminal, or a clock.
*/
package main

import (
	"github.com/tinyforth/zforth/internal/flushio"
	"github.com/tinyforth/zforth/internal/mem"
)

// addrWidth is the on-arena byte width of an address-valued cell, used only
// to size the user-variable header block (see arena layout below).
const addrWidth = 4

// User variable indices. These double as low arena addresses: any typed
// cell access (getCellTyped/putCellTyped) with addr < NumUserVars is
// redirected to this vector instead of the arena bytes; raw byte access
// (getBytes/putBytes/getByte) is not redirected.
const (
	UVHere = iota
	UVLatest
	UVTrace
	UVCompiling
	UVPostpone
	UVDStack
	UVRStack
	UVPad

	NumUserVars
)

var userVarNames = [NumUserVars]string{
	UVHere:      "h",
	UVLatest:    "latest",
	UVTrace:     "trace",
	UVCompiling: "compiling",
	UVPostpone:  "_postpone",
	UVDStack:    "dstack",
	UVRStack:    "rstack",
	UVPad:       "pad",
}

// Default arena region sizes; overridable via functional options.
const (
	DefaultDictSize   = 4096
	DefaultPadSize    = 256
	DefaultStackSize  = 256 // shared capacity for both data and return stacks
)

// InputState selects how the outer interpreter delivers the next unit of
// source text: as a whole word (INTERPRET's normal mode), or deferred to a
// primitive that asked for one more raw character or word.
type InputState int

const (
	Interpret InputState = iota
	PassChar
	PassWord
)

// VM holds all interpreter state: the arena, user variables, instruction
// pointer, input-protocol state, and the host callback table. There is
// exactly one of these per embedding; re-entrant Eval calls (from within a
// host syscall) share it.
type VM struct {
	arena *mem.Arena
	uv    [NumUserVars]Addr

	dictStart, dictEnd Addr
	padBase, padEnd    Addr
	stackBase, stackTop Addr

	ip Addr

	host Host
	out  flushio.WriteFlusher

	inputState InputState
	tokBuf     []byte
	lastWord   string

	evalDepth int

	logf func(mark, mess string, args ...interface{})

	dictSize, padSize, stackSize Addr
	initialTrace                 bool
}

const maxTokenLen = 31

// New constructs a VM with the given options applied, then initializes and
// bootstraps it (see Init and Bootstrap).
func New(opts ...Option) *VM {
	vm := &VM{
		dictSize:  DefaultDictSize,
		padSize:   DefaultPadSize,
		stackSize: DefaultStackSize,
		host:      NopHost{},
	}
	for _, opt := range opts {
		opt.apply(vm)
	}
	if vm.out == nil {
		vm.out = flushio.NewWriteFlusher(discardWriter{})
	}
	vm.Init()
	if vm.initialTrace {
		vm.uv[UVTrace] = 1
	}
	vm.Bootstrap()
	vm.evalPrelude()
	return vm
}

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }

// Init allocates/clears the arena, lays out its regions according to the
// configured sizes, and resets the user variables to their initial values.
func (vm *VM) Init() {
	vm.dictStart = Addr(NumUserVars) * addrWidth
	vm.dictEnd = vm.dictStart + vm.dictSize
	vm.padBase = vm.dictEnd
	vm.padEnd = vm.padBase + vm.padSize
	vm.stackBase = vm.padEnd
	vm.stackTop = vm.stackBase + vm.stackSize

	vm.arena = mem.NewArena(uint32(vm.stackTop))

	vm.uv[UVHere] = vm.dictStart
	vm.uv[UVLatest] = 0
	vm.uv[UVTrace] = 0
	vm.uv[UVCompiling] = 0
	vm.uv[UVPostpone] = 0
	vm.uv[UVDStack] = vm.stackBase
	vm.uv[UVRStack] = vm.stackTop - cellRawWidth
	vm.uv[UVPad] = vm.padBase

	vm.ip = 0
	vm.inputState = Interpret
	vm.tokBuf = vm.tokBuf[:0]
}

func (vm *VM) here() Addr       { return vm.uv[UVHere] }
func (vm *VM) setHere(a Addr)   { vm.uv[UVHere] = a }
func (vm *VM) latest() Addr     { return vm.uv[UVLatest] }
func (vm *VM) setLatest(a Addr) { vm.uv[UVLatest] = a }
func (vm *VM) compiling() bool  { return vm.uv[UVCompiling] != 0 }
func (vm *VM) setCompiling(b bool) {
	if b {
		vm.uv[UVCompiling] = 1
	} else {
		vm.uv[UVCompiling] = 0
	}
}
func (vm *VM) postpone() bool      { return vm.uv[UVPostpone] != 0 }
func (vm *VM) setPostpone(b bool)  {
	if b {
		vm.uv[UVPostpone] = 1
	} else {
		vm.uv[UVPostpone] = 0
	}
}
func (vm *VM) dstack() Addr      { return vm.uv[UVDStack] }
func (vm *VM) setDStack(a Addr)  { vm.uv[UVDStack] = a }
func (vm *VM) rstack() Addr      { return vm.uv[UVRStack] }
func (vm *VM) setRStack(a Addr)  { vm.uv[UVRStack] = a }
func (vm *VM) pad() Addr         { return vm.uv[UVPad] }
func (vm *VM) setPad(a Addr)     { vm.uv[UVPad] = a }
func (vm *VM) traceOn() bool     { return vm.uv[UVTrace] != 0 }

// logTrace forwards a step/primitive trace line to the host and the
// optional internal logf sink (see WithLogf), gated on the TRACE user
// variable so Forth code can toggle tracing with "1 trace 0 !!".
func (vm *VM) logTrace(format string, args ...interface{}) {
	if !vm.traceOn() {
		return
	}
	vm.host.HostTrace(vm, format, args...)
	if vm.logf != nil {
		vm.logf("TRACE", format, args...)
	}
}
