package main

import (
	"github.com/gatewaytools/gwprime/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
