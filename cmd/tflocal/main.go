package main

import (
	"os"

	"github.com/tflocal/tflocal/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
