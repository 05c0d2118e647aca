package gallery

import (
	"fmt"
	"strings"
)

// Strategy selects how the filter store reaches the selector and the list.
type Strategy string

const (
	// StrategyContext mounts the store on a context.Context once; components
	// resolve it themselves.
	StrategyContext Strategy = "context"
	// StrategyExplicit hands the store to every layer on the way down.
	StrategyExplicit Strategy = "explicit"
)

// ParseStrategy parses a user-supplied strategy name. Empty means context.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(s))) {
	case "", StrategyContext:
		return StrategyContext, nil
	case StrategyExplicit:
		return StrategyExplicit, nil
	default:
		return "", fmt.Errorf("unknown strategy %q (want %q or %q)", s, StrategyContext, StrategyExplicit)
	}
}

func (s Strategy) String() string {
	return string(s)
}
