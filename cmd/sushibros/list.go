package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sushi-bros/internal/games/sushi"
	"github.com/vovakirdan/sushi-bros/internal/platform/tui"
	"github.com/vovakirdan/sushi-bros/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered games",
	Long:  `Shows every game compiled into this binary.`,
	Run:   runList,
}

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the levels",
	Long:  `Shows each level with its target distance and boss.`,
	Run:   runLevels,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}
}

func runLevels(cmd *cobra.Command, args []string) {
	fmt.Printf("  %-3s  %-14s  %8s  %-14s  %s\n", "#", "Name", "Target", "Boss", "Subtitle")
	fmt.Printf("  %-3s  %-14s  %8s  %-14s  %s\n", "-", "----", "------", "----", "--------")
	for i, l := range sushi.Levels {
		fmt.Printf("  %-3d  %-14s  %8s  %-14s  %s\n",
			i+1, l.Name, tui.FormatScore(l.TargetDistance), sushi.BossSpecs[l.Boss].Name, l.Subtitle)
	}
	fmt.Println()
	fmt.Println("Run 'sushibros play --level N' to start at a level.")
}
