package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/glimmersocial/glimmer/pkg/internal/models"
)

// authorName falls back to "undefined" when the author reference did not
// resolve to a profile, mirroring how the feed join behaves.
func authorName(post models.Post) string {
	if len(post.Author.Name) == 0 {
		return "undefined"
	}
	return post.Author.Name
}

func relativeTime(at time.Time) string {
	delta := time.Since(at)
	switch {
	case delta < time.Minute:
		return "just now"
	case delta < time.Hour:
		return fmt.Sprintf("%dm ago", int(delta.Minutes()))
	case delta < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(delta.Hours()))
	default:
		return at.Format("Jan 2")
	}
}

func renderPostCard(post models.Post, selected bool) string {
	var b strings.Builder

	b.WriteString(avatarBadge(post.Author))
	b.WriteString(" ")
	b.WriteString(authorStyle.Render(authorName(post)))
	b.WriteString(" ")
	b.WriteString(faintStyle.Render(relativeTime(post.CreatedAt)))
	b.WriteString("\n")
	b.WriteString(post.Content)
	if post.ImageURL != nil {
		b.WriteString("\n")
		b.WriteString(faintStyle.Render("[image] " + *post.ImageURL))
	}

	if selected {
		return selectedCardStyle.Render(b.String())
	}
	return cardStyle.Render(b.String())
}

func (m Model) renderFeed() string {
	if len(m.posts) == 0 {
		return faintStyle.Render("Nothing here yet. Press n to write the first post.")
	}

	cards := make([]string, 0, len(m.posts))
	for idx, post := range m.posts {
		cards = append(cards, renderPostCard(post, m.view == viewHome && idx == m.cursor))
	}
	return strings.Join(cards, "\n")
}

func (m Model) renderCompose() string {
	var b strings.Builder
	b.WriteString(m.compose.View())
	b.WriteString("\n")
	b.WriteString(m.attachPath.View())
	if m.uploading {
		b.WriteString("\n")
		b.WriteString(accentStyle.Render("uploading..."))
	}
	return cardStyle.Render(b.String())
}
