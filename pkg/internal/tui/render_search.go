package tui

import "strings"

func (m Model) renderSearch() string {
	var b strings.Builder
	b.WriteString(m.probe.View())
	b.WriteString("\n\n")

	if len(m.results) == 0 {
		b.WriteString(faintStyle.Render("press / to search, enter to run the query"))
		return b.String()
	}

	for idx, post := range m.results {
		b.WriteString(renderPostCard(post, m.view == viewSearch && idx == m.cursor))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderPeers() string {
	peers := m.peers()
	if len(peers) == 0 {
		return faintStyle.Render("nobody else is here yet")
	}

	var b strings.Builder
	for idx, peer := range peers {
		line := avatarBadge(peer) + " " + authorStyle.Render(peer.Name)
		if len(peer.Bio) > 0 {
			line += " " + faintStyle.Render(peer.Bio)
		}
		if idx == m.cursor {
			b.WriteString(selectedCardStyle.Render(line))
		} else {
			b.WriteString(cardStyle.Render(line))
		}
		b.WriteString("\n")
	}
	b.WriteString(faintStyle.Render("enter opens the conversation"))
	return b.String()
}
