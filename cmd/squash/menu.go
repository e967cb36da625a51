package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-squash/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a variant interactively, then play it",
	Long: `Shows a picker of all registered variants. The chosen variant starts
with the same flags as play.`,
	Run: runMenu,
}

func runMenu(cmd *cobra.Command, args []string) {
	width := 80
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
	}

	variantID, err := tui.RunMenu(width)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if variantID == "" {
		return
	}

	runPlay(cmd, []string{variantID})
}
