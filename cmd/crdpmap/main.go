package main

import (
	"fmt"
	"os"

	"github.com/crdptools/crdpmap/cmd"
)

func main() {
	root := cmd.NewRootCommand()
	root.AddCommand(cmd.NewGenerateCommand())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
