package main

import (
	cmd "github.com/bitym/core/cmd/bitym-cli/modules"
)

func main() {
	cmd.Execute()
}
