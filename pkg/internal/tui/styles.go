package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/glimmersocial/glimmer/pkg/internal/models"
)

var (
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	faintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	authorStyle = lipgloss.NewStyle().Bold(true)

	tabStyle       = lipgloss.NewStyle().Padding(0, 2).Foreground(lipgloss.Color("245"))
	activeTabStyle = lipgloss.NewStyle().Padding(0, 2).Foreground(lipgloss.Color("214")).Bold(true).Underline(true)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1)

	selectedCardStyle = cardStyle.
				BorderForeground(lipgloss.Color("214"))

	overlayStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("214")).
			Padding(1, 2)

	alertStyle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color("196")).
			Foreground(lipgloss.Color("196")).
			Padding(1, 2)
)

// avatarPalette is the pool the derived avatar color is picked from. Same
// username, same color, everywhere.
var avatarPalette = []string{"203", "208", "214", "112", "42", "45", "39", "63", "99", "171", "205"}

func avatarBadge(account models.Account) string {
	color := avatarPalette[int(account.AvatarSeed())%len(avatarPalette)]
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("232")).
		Background(lipgloss.Color(color)).
		Bold(true).
		Padding(0, 1).
		Render(account.AvatarInitial())
}
