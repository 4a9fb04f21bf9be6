package main

import (
	"os"

	"github.com/sachacalipel7-cmyk/FinAdvisor/cmd/finplan/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
