package main

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"

	"github.com/teranos/tlgen/cmd/tlgen/commands"
	"github.com/teranos/tlgen/errors"
	"github.com/teranos/tlgen/logger"
)

func main() {
	err := commands.NewRootCmd().Execute()
	logger.Cleanup()
	if err == nil {
		return
	}

	fmt.Fprintf(os.Stderr, "%s %v\n", pterm.Red("Error:"), err)
	for _, hint := range errors.GetAllHints(err) {
		fmt.Fprintf(os.Stderr, "  %s %s\n", pterm.Yellow("hint:"), hint)
	}
	// 1 = out of date, 2 = anything else, as documented on `tlgen check`
	if errors.Is(err, errors.ErrOutOfDate) {
		os.Exit(1)
	}
	os.Exit(2)
}
