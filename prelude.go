package main

import "fmt"

// prelude is a short bootstrap-time program, written in the language it
// defines, that layers the console-facing words spec.md describes as "the
// core surface" (EMIT/PRINT/TYPE/KEY, reached through sys) on top of the
// bootstrapped primitive set. Control-flow words (if/else/then, begin/
// while/repeat and friends) are deliberately left out of this prelude: per
// spec.md's own discussion of its example scenarios, those are a concern
// for a user-supplied prelude layered on top of this core, not for the
// VM's own bootstrap.
const prelude = `
: emit 0 sys ;
: . 1 sys ;
: type 2 sys ;
: key 3 sys ;
: .s 130 sys ;
`

// evalPrelude runs the prelude once, immediately after Bootstrap. A
// failure here means the prelude text itself is broken, not anything a
// caller did, so it panics rather than surfacing a Result a caller has no
// way to have anticipated.
func (vm *VM) evalPrelude() {
	if result := vm.Eval(prelude); result != OK {
		panic(fmt.Sprintf("internal prelude failed to evaluate: %v", result))
	}
}
