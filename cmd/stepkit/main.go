package main

import (
	"os"

	"github.com/ib-77/stepkit/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
