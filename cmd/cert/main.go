// Command cert propagates measurement uncertainty through arithmetic.
package main

import (
	"fmt"
	"os"

	"github.com/alexshd/cert/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "cert:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
