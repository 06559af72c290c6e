package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the level files in load order",
	Long: `List the level files the game cycles through, with their size and
pellet count. After the last level the game starts over from the first.

Examples:
  pacman levels
  pacman levels --levels ./levels`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

func runLevels(_ *cobra.Command, _ []string) {
	cat, err := openCatalog()
	if err != nil {
		fail("%v", err)
	}

	source := cat.Dir()
	if source == "" {
		source = "built-in"
	}
	fmt.Printf("Levels (%s)\n\n", source)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "  #\tFile\tName\tSize\tPellets")
	fmt.Fprintln(tw, "  -\t----\t----\t----\t-------")

	broken := 0
	for i, name := range cat.Names() {
		l, err := cat.Load(name)
		if err != nil {
			broken++
			fmt.Fprintf(tw, "  %d\t%s\t(error: %v)\t\t\n", i+1, name, err)
			continue
		}
		fmt.Fprintf(tw, "  %d\t%s\t%s\t%dx%d\t%d\n", i+1, name, l.Name, l.Width, l.Height, l.PelletCount)
	}
	tw.Flush()

	if broken > 0 {
		fmt.Println()
		fail("%d level file(s) failed to load", broken)
	}
}
