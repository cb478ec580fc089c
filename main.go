package main

import (
	"fmt"

	"github.com/ericr/backdoor/config"
	"github.com/ericr/backdoor/solver"
)

// main is a minimal smoke demo of the solver package; the real entry point
// lives in cmd/backdoor.
func main() {
	printBanner()

	conf := config.New()
	sat := solver.New(conf)
	sat.AddClause([]int{-1, -3, 5})
	sat.AddClause([]int{-1, -3, -5})

	if sat.Solve([]int{1}) {
		fmt.Println("\nSAT")

		for _, p := range sat.Answer() {
			fmt.Printf("%d\n", p)
		}
	} else {
		fmt.Println("\nUNSAT")
	}
}

func printBanner() {
	fmt.Printf("Backdoor Solver %s\n", solver.Version())
	fmt.Println("")
}
