package gallery

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/gradients/internal/gradient"
)

var strategies = []Strategy{StrategyContext, StrategyExplicit}

func scenarioDataset() *gradient.Dataset {
	return gradient.NewDataset([]gradient.Gradient{
		{Name: "Sunset", Start: gradient.MustParseColor("#ff7e5f"), End: gradient.MustParseColor("#feb47b"), Tags: []string{"warm", "orange"}},
		{Name: "Ocean", Start: gradient.MustParseColor("#2193b0"), End: gradient.MustParseColor("#6dd5ed"), Tags: []string{"cool", "blue"}},
	})
}

func newTestModel(t *testing.T, ds *gradient.Dataset, strategy Strategy) Model {
	t.Helper()
	m := New(context.Background(), ds, Options{Strategy: strategy, SwatchWidth: 10})
	t.Cleanup(m.Close)
	return m
}

func press(t *testing.T, m Model, keys ...tea.KeyMsg) Model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(k)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func labels(controls []TagControl) []string {
	out := make([]string, len(controls))
	for i, c := range controls {
		out[i] = c.Label
	}
	return out
}
