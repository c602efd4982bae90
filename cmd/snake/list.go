package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List board and speed presets",
	Long:  `Shows the board sizes and speeds that can be passed to --board and --speed.`,
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		printPresets(os.Stdout)
	},
}

func printPresets(w io.Writer) {
	fmt.Fprintln(w, "Boards:")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %-8s  %s\n", "Name", "Size")
	fmt.Fprintf(w, "  %-8s  %s\n", "----", "----")
	for _, p := range config.BoardPresets() {
		fmt.Fprintf(w, "  %-8s  %dx%d\n", p.Name, p.Width, p.Height)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Speeds:")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %-8s  %s\n", "Name", "Tick")
	fmt.Fprintf(w, "  %-8s  %s\n", "----", "----")
	for _, p := range config.SpeedPresets() {
		fmt.Fprintf(w, "  %-8s  %.2fs\n", p.Name, p.TickInterval)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'snake play --board <name> --speed <name>' to use them.")
}
