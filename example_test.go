package calc_test

import (
	"fmt"

	"github.com/zephyrtronium/calc"
)

func ExampleEval() {
	for _, s := range []string{"2+3x4", "-5+3", "1-2-3", "12x", "4/0", "1.2.3"} {
		r, err := calc.Eval(s)
		if err != nil {
			fmt.Println(s, "error:", err)
			continue
		}
		fmt.Println(s, "=", r)
	}

	// Output:
	// 2+3x4 = 14
	// -5+3 = -2
	// 1-2-3 = 2
	// 12x = 12
	// 4/0 = +Inf
	// 1.2.3 error: 1: invalid number "1.2.3"
}

func ExampleBuild() {
	a, err := calc.Build("1-2+3x4")
	if err != nil {
		panic(err)
	}
	fmt.Println(a, "=", a.Eval())

	// Output:
	// ([1] - [(2) + ([3] x [4])]) = -13
}
