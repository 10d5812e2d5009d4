package main

import (
	"os"

	"github.com/wonny/finstitch/cmd/finstitch/commands"
)

// main is the entry point for the finstitch CLI
// ⭐ 통합 CLI 진입점: go run ./cmd/finstitch [command]
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
