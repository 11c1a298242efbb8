package main

// @generated from vm_test.go

//go:generate go run scripts/gen_vm_expects.go -- vm_test.go vm_expects_test.go

func withVMOptions(opts ...Option) func(vmCase) vmCase {
	return func(c vmCase) vmCase {
		return c.withOptions(opts...)
	}
}

func expectVMResult(r Result) func(vmCase) vmCase {
	return func(c vmCase) vmCase {
		return c.expectResult(r)
	}
}

func expectVMStack(values ...Cell) func(vmCase) vmCase {
	return func(c vmCase) vmCase {
		return c.expectStack(values...)
	}
}

func expectVMOutput(want string) func(vmCase) vmCase {
	return func(c vmCase) vmCase {
		return c.expectOutput(want)
	}
}
