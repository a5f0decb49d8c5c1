package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if len(m.alert) > 0 {
		return alertStyle.Render(m.alert + "\n\n" + faintStyle.Render("press any key to dismiss"))
	}

	if m.user == nil {
		return m.renderLogin()
	}

	if m.dm != nil {
		return m.renderDM()
	}
	if m.selectedPost != nil {
		return m.renderPostDetail()
	}

	var body string
	switch m.view {
	case viewHome:
		body = m.renderCompose() + "\n" + m.renderFeed()
	case viewSearch:
		body = m.renderSearch()
	case viewMessages:
		body = m.renderPeers()
	case viewProfile:
		if m.isEditing {
			body = m.renderProfileEditor()
		} else {
			body = m.renderProfile()
		}
	}

	return m.renderTabs() + "\n" + body
}

func (m Model) renderLogin() string {
	var b strings.Builder
	b.WriteString(accentStyle.Render("Glimmer"))
	b.WriteString("\n\n")
	b.WriteString("Sign in to get started.\n\n")
	b.WriteString(m.username.View())
	b.WriteString("\n\n")
	b.WriteString(faintStyle.Render("enter to continue"))
	return overlayStyle.Render(b.String())
}

func (m Model) renderTabs() string {
	labels := []struct {
		view  string
		label string
	}{
		{viewHome, "1 Home"},
		{viewSearch, "2 Search"},
		{viewMessages, "3 Messages"},
		{viewProfile, "4 Profile"},
	}

	rendered := make([]string, 0, len(labels))
	for _, tab := range labels {
		if tab.view == m.view {
			rendered = append(rendered, activeTabStyle.Render(tab.label))
		} else {
			rendered = append(rendered, tabStyle.Render(tab.label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m Model) renderPostDetail() string {
	post := *m.selectedPost

	var b strings.Builder
	b.WriteString(avatarBadge(post.Author))
	b.WriteString(" ")
	b.WriteString(authorStyle.Render(authorName(post)))
	b.WriteString("\n")
	b.WriteString(faintStyle.Render(post.CreatedAt.Format("Jan 2 15:04")))
	b.WriteString("\n\n")
	b.WriteString(post.Content)
	if post.ImageURL != nil {
		b.WriteString("\n\n")
		b.WriteString(faintStyle.Render("[image] " + *post.ImageURL))
	}
	b.WriteString("\n\n")
	b.WriteString(faintStyle.Render("esc to close"))

	return overlayStyle.Render(b.String())
}
