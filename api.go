package main

import (
	"io"

	"github.com/tinyforth/zforth/internal/flushio"
)

// Option configures a VM at construction time (see New).
type Option interface{ apply(vm *VM) }

type options []Option

func (opts options) apply(vm *VM) {
	for _, opt := range opts {
		if opt != nil {
			opt.apply(vm)
		}
	}
}

// Options combines several options into one, flattening nested Options
// values so they compose under a single With* call site.
func Options(opts ...Option) Option {
	var res options
	for _, opt := range opts {
		switch impl := opt.(type) {
		case nil, noption:
		case options:
			res = append(res, impl...)
		default:
			res = append(res, opt)
		}
	}
	switch len(res) {
	case 0:
		return noption{}
	case 1:
		return res[0]
	default:
		return res
	}
}

type noption struct{}

func (noption) apply(*VM) {}

type dictSizeOption Addr
type padSizeOption Addr
type stackSizeOption Addr
type hostOption struct{ Host }
type outputOption struct{ io.Writer }
type teeOption struct{ io.Writer }
type logfOption func(mark, mess string, args ...interface{})
type traceOption bool

// WithDictSize overrides the dictionary region's size in bytes.
func WithDictSize(n int) Option { return dictSizeOption(n) }

// WithPadSize overrides the scratch-pad region's size in bytes.
func WithPadSize(n int) Option { return padSizeOption(n) }

// WithStackSize overrides the shared data/return stack capacity in bytes.
func WithStackSize(n int) Option { return stackSizeOption(n) }

// WithHost installs the syscall/number-parsing/print callback table. The
// zero value (no WithHost) leaves the VM wired to NopHost, which refuses
// every syscall -- a VM meant to do anything with "emit", "." or friends
// needs a real Host.
func WithHost(h Host) Option { return hostOption{h} }

// WithOutput directs the VM's PRINT/TYPE/EMIT output (as written by
// StdHost) to w, replacing whatever output was configured before.
func WithOutput(w io.Writer) Option { return outputOption{w} }

// WithTee adds an additional output sink without replacing the existing
// one -- useful for capturing a transcript alongside normal output.
func WithTee(w io.Writer) Option { return teeOption{w} }

// WithLogf installs a sink for trace lines (see TRACE) in addition to
// whatever the Host's HostTrace does with them.
func WithLogf(logf func(mark, mess string, args ...interface{})) Option { return logfOption(logf) }

// WithTrace turns the TRACE user variable on at boot, equivalent to
// Forth code doing "1 trace 0 !!" as its first act.
func WithTrace(on bool) Option { return traceOption(on) }

func (o dictSizeOption) apply(vm *VM)   { vm.dictSize = Addr(o) }
func (o padSizeOption) apply(vm *VM)    { vm.padSize = Addr(o) }
func (o stackSizeOption) apply(vm *VM)  { vm.stackSize = Addr(o) }
func (o hostOption) apply(vm *VM)       { vm.host = o.Host }
func (o logfOption) apply(vm *VM)       { vm.logf = o }
func (o traceOption) apply(vm *VM)      { vm.initialTrace = bool(o) }

func (o outputOption) apply(vm *VM) {
	vm.out = flushio.NewWriteFlusher(o.Writer)
}

func (o teeOption) apply(vm *VM) {
	if vm.out == nil {
		vm.out = flushio.NewWriteFlusher(o.Writer)
		return
	}
	vm.out = flushio.WriteFlushers(vm.out, flushio.NewWriteFlusher(o.Writer))
}
