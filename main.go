package main

import (
	"fmt"
	"os"

	"calc/app"
	"calc/hal"
	"calc/internal/buildinfo"
	"calc/view"
)

func main() {
	cfg := hal.WindowConfig{
		Title:  "Calc (" + buildinfo.Short() + ")",
		Width:  view.WindowSize,
		Height: view.WindowSize,
	}
	if err := hal.RunWindow(cfg, app.New); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
