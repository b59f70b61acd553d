package dsl_test

import (
	"fmt"

	"github.com/gitrdm/ranked-belief/dsl"
)

func ExampleNormalExceptional() {
	circuit := dsl.NormalExceptional("closed", "open")

	pairs, _ := dsl.TakeN(circuit, 2)
	for _, p := range pairs {
		fmt.Printf("%v rank=%s\n", p.Value, p.Rank)
	}
	// Output:
	// closed rank=0
	// open rank=1
}

func ExampleNormalExceptional_recursive() {
	var countFrom func(n int) dsl.R
	countFrom = func(n int) dsl.R {
		return dsl.NormalExceptional(n, func() any {
			return countFrom(n + 1)
		})
	}

	pairs, _ := dsl.TakeN(countFrom(10), 3)
	for _, p := range pairs {
		fmt.Printf("%v rank=%s\n", p.Value, p.Rank)
	}
	// Output:
	// 10 rank=0
	// 11 rank=1
	// 12 rank=2
}

func ExampleLetStar() {
	r := dsl.LetStar([]dsl.Binding{
		dsl.Bind("weather", dsl.NormalExceptional("dry", "rain")),
		{Name: "ground", Build: func(env dsl.Env) (any, error) {
			if env["weather"] == "rain" {
				return dsl.NormalExceptional("wet", "dry"), nil
			}
			return "dry", nil
		}},
	}, func(env dsl.Env) (any, error) {
		return fmt.Sprintf("%s ground under %s sky", env["ground"], env["weather"]), nil
	})

	pairs, _ := dsl.TakeN(r, 3)
	for _, p := range pairs {
		fmt.Printf("%v rank=%s\n", p.Value, p.Rank)
	}
	// Output:
	// dry ground under dry sky rank=0
	// wet ground under rain sky rank=1
	// dry ground under rain sky rank=2
}

func ExampleRankedApply() {
	double := dsl.Func(func(args ...any) (any, error) {
		return args[0].(int) * 2, nil
	})
	negate := dsl.Func(func(args ...any) (any, error) {
		return -args[0].(int), nil
	})

	r := dsl.RankedApply(dsl.NormalExceptional(double, negate), 21)

	pairs, _ := dsl.TakeN(r, 2)
	for _, p := range pairs {
		fmt.Printf("%v rank=%s\n", p.Value, p.Rank)
	}
	// Output:
	// 42 rank=0
	// -21 rank=1
}
