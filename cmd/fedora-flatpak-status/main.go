package main

import (
	"os"

	"github.com/obentoo/updatestatus/internal/app"
	"github.com/obentoo/updatestatus/internal/common/output"
)

func main() {
	if err := app.NewRootCommand(app.Compact).Execute(); err != nil {
		output.PrintError("%v", err)
		os.Exit(1)
	}
}
