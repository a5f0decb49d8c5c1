package tui

import (
	"strings"

	"github.com/glimmersocial/glimmer/pkg/internal/models"
	"github.com/samber/lo"
)

const dmWindow = 12

func renderMessageLine(message models.Message, mine bool) string {
	name := message.Sender.Name
	if len(name) == 0 {
		name = "undefined"
	}

	line := avatarBadge(message.Sender) + " " + authorStyle.Render(name) + " " + faintStyle.Render(relativeTime(message.CreatedAt)) + "\n"
	line += message.Content
	for _, attachment := range message.Attachments {
		line += "\n" + faintStyle.Render("[image] "+attachment)
	}
	return lo.Ternary(mine, selectedCardStyle, cardStyle).Render(line)
}

func (m Model) renderDM() string {
	dm := m.dm

	var b strings.Builder
	b.WriteString(accentStyle.Render("@" + dm.target.Name))
	b.WriteString("\n\n")

	// Window the history around the scroll position; follow mode pins the
	// window to the newest message.
	end := dm.scroll
	if dm.follow || end > len(dm.messages) {
		end = len(dm.messages)
	}
	start := end - dmWindow
	if start < 0 {
		start = 0
	}

	if len(dm.messages) == 0 {
		b.WriteString(faintStyle.Render("say hi"))
		b.WriteString("\n")
	}
	for _, message := range dm.messages[start:end] {
		b.WriteString(renderMessageLine(message, m.user != nil && message.SenderID == m.user.ID))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dm.input.View())
	b.WriteString("\n")
	b.WriteString(faintStyle.Render("enter send · esc close"))

	return overlayStyle.Render(b.String())
}
