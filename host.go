package main

import (
	"fmt"

	"github.com/tinyforth/zforth/internal/runeio"
)

// Well-known syscall ids dispatched through the sys primitive. Everything
// at or above SysUser is opaque to the core and left to the embedding
// host to interpret.
const (
	SysEmit = iota
	SysPrint
	SysType
	SysKey

	SysUser = 128
)

// SysStackDump is the console host's ".s" extension: print the data
// stack, top of stack first, as "<count> vN ... v2 v1".
const SysStackDump = SysUser + 2

// Host is the set of callbacks a VM embedding must supply: number parsing,
// trace/print output, and syscall dispatch. The core never touches a
// terminal, clock, or file system directly -- everything externally
// visible goes through here.
type Host interface {
	// HostSys handles a "sys" dispatch for the given id. last is the most
	// recently completed input token (mirroring zf_host_sys's "input"
	// parameter), non-nil only when a deferred PassWord/PassChar request
	// is being resumed. It returns the InputState the VM should adopt:
	// Interpret to let the sys call complete normally, or PassChar/
	// PassWord to request more raw input before retrying.
	HostSys(vm *VM, id int, last []byte) InputState
	// HostTrace receives a formatted trace line when the trace user
	// variable is non-zero.
	HostTrace(vm *VM, format string, args ...interface{})
	// HostPrint receives formatted output from introspection primitives
	// (words, see) that isn't routed through a data-stack syscall.
	HostPrint(vm *VM, format string, args ...interface{})
	// HostParseNum parses buf as a number in the host's preferred syntax,
	// returning ok=false if it isn't one (the outer interpreter then
	// aborts NotAWord).
	HostParseNum(buf []byte) (Cell, bool)
}

// NopHost is a Host that discards all output and dispatches no syscalls;
// it parses numbers with the same rules as StdHost. Useful for embeddings
// that drive the VM purely through push/pop and never call EMIT/PRINT/sys.
type NopHost struct{}

func (NopHost) HostSys(vm *VM, id int, last []byte) InputState       { return Interpret }
func (NopHost) HostTrace(vm *VM, format string, args ...interface{}) {}
func (NopHost) HostPrint(vm *VM, format string, args ...interface{}) {}
func (NopHost) HostParseNum(buf []byte) (Cell, bool)                 { return parseNumber(buf) }

// StdHost is the default console-facing host: EMIT/TYPE render through an
// ANSI-aware rune writer, PRINT and introspection output go straight to
// vm.out (see WithOutput/WithTee), and the ".s" stack-dump extension is
// wired at SysStackDump. It holds no state of its own -- every method is
// handed the vm and writes through its configured output sink.
type StdHost struct{}

// NewStdHost builds the default console-facing Host. Output goes wherever
// the VM's WithOutput/WithTee options point it (a discard sink if neither
// was given).
func NewStdHost() *StdHost { return &StdHost{} }

func (h *StdHost) HostSys(vm *VM, id int, last []byte) InputState {
	switch id {
	case SysEmit:
		c := vm.pop()
		runeio.WriteANSIRune(vm.out, rune(int64(c)))
	case SysPrint:
		c := vm.pop()
		fmt.Fprintf(vm.out, "%v ", float64(c))
	case SysType:
		length := vm.pop()
		addr := Addr(int64(vm.pop()))
		buf := vm.getBytes(addr, int(length))
		runeio.WriteANSIString(vm.out, string(buf))
	case SysKey:
		// No host-driven key input in this embedding; a no-op completes
		// immediately rather than blocking forever.
	case SysStackDump:
		n := vm.dstackCount()
		fmt.Fprintf(vm.out, "<%d>", n)
		for i := 0; i < n; i++ {
			fmt.Fprintf(vm.out, " %v", float64(vm.pick(i)))
		}
		fmt.Fprintln(vm.out)
	}
	return Interpret
}

func (h *StdHost) HostTrace(vm *VM, format string, args ...interface{}) {
	fmt.Fprintf(vm.out, format, args...)
}

func (h *StdHost) HostPrint(vm *VM, format string, args ...interface{}) {
	fmt.Fprintf(vm.out, format, args...)
}

func (h *StdHost) HostParseNum(buf []byte) (Cell, bool) { return parseNumber(buf) }
