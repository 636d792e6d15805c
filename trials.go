package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/iburimskiy/swap-tracking/internal/config"
	"github.com/iburimskiy/swap-tracking/internal/trial"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ccff"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888899"))

	okStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00ff88"))

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ff4444"))

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444466")).
			Padding(0, 1)
)

func listTrials(cmd *cobra.Command, args []string) error {
	exp := config.Default()
	if len(args) == 1 {
		var err error
		if exp, err = config.Load(args[0]); err != nil {
			return err
		}
	}
	catalog, err := exp.Catalog()
	if err != nil {
		return err
	}

	var catalogLines []string
	for _, id := range catalog.IDs() {
		t, _ := catalog.Lookup(id)
		swaps := make([]string, len(t.Swaps))
		for i, s := range t.Swaps {
			swaps[i] = s.String()
		}
		catalogLines = append(catalogLines, fmt.Sprintf("%s %s",
			labelStyle.Render(fmt.Sprintf("#%-3d", id)), strings.Join(swaps, "  ")))
	}

	trials, err := exp.SessionTrials()
	if err != nil {
		return err
	}
	var sessionLines []string
	for i, arrangement := range answerKey(trials, len(exp.Tokens.Colors), exp.Timing.ResetBetweenTrials) {
		names := make([]string, len(arrangement))
		for slot, tok := range arrangement {
			names[slot] = exp.Tokens.Colors[tok]
		}
		sessionLines = append(sessionLines, fmt.Sprintf("%s id %-3d -> %s",
			labelStyle.Render(fmt.Sprintf("Trial %d", i+1)), trials[i].ID, strings.Join(names, ", ")))
	}

	out := lipgloss.JoinVertical(lipgloss.Left,
		panelStyle.Render(titleStyle.Render("Catalog")+"\n"+strings.Join(catalogLines, "\n")),
		panelStyle.Render(titleStyle.Render("Session (slot 1..N after reveal)")+"\n"+strings.Join(sessionLines, "\n")),
	)
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

// answerKey returns, per session trial, which token sits in each slot at
// the reveal. Tokens carry their arrangement into the next trial unless
// reset is set.
func answerKey(trials []trial.Trial, tokens int, reset bool) [][]int {
	identity := make([]int, tokens)
	for i := range identity {
		identity[i] = i
	}
	current := identity
	out := make([][]int, 0, len(trials))
	for _, t := range trials {
		if reset {
			current = identity
		}
		current = trial.Apply(current, t.Swaps)
		out = append(out, current)
	}
	return out
}
