package main

import (
	"github.com/luxchain/ledger/app/tooling/cli/cmd"
)

func main() {
	cmd.Execute()
}
