package gallery

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// Colors
	primaryColor = lipgloss.Color("99")  // Purple
	mutedColor   = lipgloss.Color("245") // Gray
	lightColor   = lipgloss.Color("254") // Near white
	darkColor    = lipgloss.Color("236") // Dark gray
	accentColor  = lipgloss.Color("212") // Pink

	// Title style
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			PaddingLeft(1).
			PaddingRight(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	// Tag selector buttons. The active tag mirrors a light, disabled button;
	// the rest are dark and selectable.
	buttonStyle = lipgloss.NewStyle().
			Padding(0, 1).
			MarginRight(1)

	activeButtonStyle = buttonStyle.
				Foreground(darkColor).
				Background(lightColor).
				Bold(true)

	inactiveButtonStyle = buttonStyle.
				Foreground(lightColor).
				Background(darkColor)

	focusedButtonStyle = inactiveButtonStyle.
				Underline(true).
				Foreground(accentColor)

	selectorStyle = lipgloss.NewStyle().
			MarginTop(1).
			MarginBottom(1)

	// Swatch styles
	swatchNameStyle = lipgloss.NewStyle().
			Bold(true)

	focusedNameStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(accentColor)

	swatchMetaStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	tagBadgeStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			MarginRight(1)

	swatchStyle = lipgloss.NewStyle().
			PaddingLeft(2).
			MarginBottom(1)

	// Empty state style
	emptyStateStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true).
			PaddingLeft(2).
			PaddingTop(1).
			PaddingBottom(1)

	scrollHintStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			PaddingLeft(2)

	// Footer style
	footerStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(mutedColor)
)
