package theme

import "github.com/charmbracelet/lipgloss"

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Auth   AuthTheme
	Panel  PanelTheme
	Result ResultTheme
	Footer FooterTheme
}

// AuthTheme styles the login/signup form.
type AuthTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Label lipgloss.Style
	Error lipgloss.Style
	Hint  lipgloss.Style
}

// PanelTheme styles framed panels and headings.
type PanelTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Body  lipgloss.Style
}

// ResultTheme styles the analysis result card.
type ResultTheme struct {
	Frame   lipgloss.Style
	Emotion lipgloss.Style
	Score   lipgloss.Style
	Insight lipgloss.Style
	Faint   lipgloss.Style
}

// FooterTheme groups styles used by the bottom status bar.
type FooterTheme struct {
	Help      lipgloss.Style
	Status    lipgloss.Style
	Notice    lipgloss.Style
	Recording lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	return Theme{
		Auth: AuthTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(1, 2),
			Title: lipgloss.NewStyle().Bold(true),
			Label: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Error: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
			Hint:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		},
		Panel: PanelTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(1, 2),
			Title: lipgloss.NewStyle().Bold(true),
			Body:  lipgloss.NewStyle(),
		},
		Result: ResultTheme{
			Frame:   lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).Padding(1, 2),
			Emotion: lipgloss.NewStyle().Bold(true),
			Score:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Insight: lipgloss.NewStyle(),
			Faint:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		},
		Footer: FooterTheme{
			Help:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Notice:    lipgloss.NewStyle().Foreground(lipgloss.Color("215")),
			Recording: lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		},
	}
}
