package main

// Primitive opcodes. The indices here are load-bearing: they are compiled
// directly into word bodies as the threaded-code values the inner
// interpreter dispatches on, so the order of primNames below must never
// change once dictionaries built against it are expected to keep working.
const (
	opExit = iota
	opAbort
	opCreate
	opForget
	opLit
	opLits
	opLtz
	opColon
	opSemicolon
	opAdd
	opSub
	opMul
	opDiv
	opMod
	opDrop
	opDup
	op2Dup
	opPickr
	opImmediate
	opHidden
	opPeek
	opPoke
	opSwap
	op2Swap
	op2Over
	opTuck
	op2Tuck
	opRot
	opJmp
	opJmp0
	opTick
	opTickC
	opComment
	opComment2
	opPushR
	opPopR
	opEqual
	opSys
	opPick
	opComma
	opWord
	opLen
	opAnd
	opStr
	opExecute
	opCMove
	opChar
	opWords
	opSee
	opCells
	opAlloc
	opCompare
	opSearch
	opAtoi
	opAtof

	primCount
)

// primNames holds the dictionary name for every primitive opcode, in
// opcode order. A leading underscore marks the primitive IMMEDIATE once
// bootstrapped (and is stripped from the dictionary name); it has nothing
// to do with Go identifier naming, only with how zf_bootstrap's ancestor
// tagged words that must run even while compiling.
var primNames = [primCount]string{
	opExit:      "exit",
	opAbort:     "abort",
	opCreate:    "create",
	opForget:    "forget",
	opLit:       "lit",
	opLits:      "lits",
	opLtz:       "<0",
	opColon:     ":",
	opSemicolon: "_;",
	opAdd:       "+",
	opSub:       "-",
	opMul:       "*",
	opDiv:       "/",
	opMod:       "mod",
	opDrop:      "drop",
	opDup:       "dup",
	op2Dup:      "2dup",
	opPickr:     "pickr",
	opImmediate: "_immediate",
	opHidden:    "_hidden",
	opPeek:      "@@",
	opPoke:      "!!",
	opSwap:      "swap",
	op2Swap:     "2swap",
	op2Over:     "2over",
	opTuck:      "tuck",
	op2Tuck:     "2tuck",
	opRot:       "rot",
	opJmp:       "jmp",
	opJmp0:      "jmp0",
	opTick:      "'",
	opTickC:     "[']",
	opComment:   "_(",
	opComment2:  "_\\",
	opPushR:     ">r",
	opPopR:      "r>",
	opEqual:     "=",
	opSys:       "sys",
	opPick:      "pick",
	opComma:     ",,",
	opWord:      "word",
	opLen:       "##",
	opAnd:       "&",
	opStr:       `_s"`,
	opExecute:   "execute",
	opCMove:     "cmove",
	opChar:      "char",
	opWords:     "words",
	opSee:       "see",
	opCells:     "cells",
	opAlloc:     "alloc",
	opCompare:   "compare",
	opSearch:    "search",
	opAtoi:      "atoi",
	opAtof:      "atof",
}

// primFns is the opcode dispatch table; see prims_*.go for the bodies.
// Populated by an init() in interp.go's package so every prims_*.go file
// can contribute without a central registration list.
var primFns [primCount]func(vm *VM, input []byte, haveInput bool)

// hiddenPrimNames names are automatically hidden once bootstrapped (after
// underscore-stripping), matching the original's ad hoc list of "internal
// plumbing" words not meant to clutter a `words` listing.
var hiddenPrimNames = map[string]bool{
	",,": true,
	"@@": true,
	"!!": true,
	"##": true,
	"(":  true,
	`\`:  true,
}

// addPrim installs one primitive as a two-cell-bodied word: [opcode, EXIT].
// A leading underscore in name marks it IMMEDIATE and is stripped before
// the word is created.
func (vm *VM) addPrim(name string, op int) {
	imm := false
	if len(name) > 0 && name[0] == '_' {
		name = name[1:]
		imm = true
	}
	vm.create(name, flagPrim)
	vm.compile(Cell(op))
	vm.compile(Cell(opExit))
	if imm {
		vm.makeImmediate()
	}
	if hiddenPrimNames[name] {
		vm.makeHidden()
	}
}

// addUserVar installs one user-variable accessor word: its body, when
// executed, pushes its own index (so e.g. "h" pushes UVHere, letting Forth
// code do "h 0 @@" to fetch HERE via the low-address redirect in
// getCellTyped, or "5 h 0 !!" to overwrite it).
func (vm *VM) addUserVar(name string, idx Addr) {
	vm.create(name, 0)
	vm.compile(Cell(opLit))
	vm.compile(Cell(idx))
	vm.compile(Cell(opExit))
}

// Bootstrap populates an empty dictionary with every primitive and user
// variable, in the fixed order that gives them their opcode/index
// identity. New VMs always start from this state.
func (vm *VM) Bootstrap() {
	for i := 0; i < primCount; i++ {
		vm.addPrim(primNames[i], i)
	}
	for i, name := range userVarNames {
		vm.addUserVar(name, Addr(i))
	}
}
