package main

// Meta primitives: the host syscall gateway, and the two introspection
// entry points (words/see) that print through HostPrint.

func init() {
	// sys ( id -- ) delegates to the host. A non-INTERPRET result means
	// the host wants more input before this syscall can complete; the id
	// is re-pushed so the next resume can see it again.
	primFns[opSys] = func(vm *VM, input []byte, _ bool) {
		id := vm.pop()
		vm.inputState = vm.host.HostSys(vm, int(int64(id)), input)
		if vm.inputState != Interpret {
			vm.push(id)
		}
	}

	primFns[opWords] = func(vm *VM, _ []byte, _ bool) {
		for _, w := range vm.WordsList("", false) {
			vm.host.HostPrint(vm, "%s ", w)
		}
	}

	// see ( "name" -- ) reads the next word and disassembles it.
	primFns[opSee] = func(vm *VM, input []byte, haveInput bool) {
		if !haveInput {
			vm.inputState = PassWord
			return
		}
		vm.Disassemble(string(input))
		vm.inputState = Interpret
	}
}
