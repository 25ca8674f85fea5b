package main

import (
	"fmt"
	"os"

	"github.com/RyugaXhypeR/connect-four/pkg/cli"
	"github.com/muesli/termenv"
)

func main() {
	out := termenv.NewOutput(os.Stdout)
	session := cli.NewSession(os.Stdin, out)

	if err := session.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "connect4:", err)
		os.Exit(1)
	}
}
