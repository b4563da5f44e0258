package main

import (
	"os"

	"github.com/msto63/ppinterpreter/cmd/ppi/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
