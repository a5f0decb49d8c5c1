package tui

import (
	"strings"
)

func (m Model) renderProfile() string {
	user := *m.user

	var b strings.Builder
	if user.HeaderURL != nil {
		b.WriteString(faintStyle.Render("[header] " + *user.HeaderURL))
		b.WriteString("\n")
	}
	b.WriteString(avatarBadge(user))
	b.WriteString(" ")
	b.WriteString(authorStyle.Render(user.Name))
	b.WriteString("\n")
	if len(user.Bio) > 0 {
		b.WriteString(user.Bio)
	} else {
		b.WriteString(faintStyle.Render("no bio yet"))
	}
	b.WriteString("\n\n")

	// Own posts, newest first, straight from the already fetched feed.
	count := 0
	for _, post := range m.posts {
		if post.AuthorID != user.ID {
			continue
		}
		b.WriteString(renderPostCard(post, false))
		b.WriteString("\n")
		count++
	}
	if count == 0 {
		b.WriteString(faintStyle.Render("no posts yet"))
	}

	b.WriteString("\n")
	b.WriteString(faintStyle.Render("press e to edit your profile"))

	return b.String()
}

func (m Model) renderProfileEditor() string {
	var b strings.Builder
	b.WriteString(accentStyle.Render("Edit profile"))
	b.WriteString("\n\n")
	b.WriteString("Bio:    " + m.bio.View())
	b.WriteString("\n")
	b.WriteString("Header: " + m.headerPath.View())
	b.WriteString("\n")
	if m.headerDraft != nil {
		b.WriteString(faintStyle.Render("staged header: " + *m.headerDraft))
		b.WriteString("\n")
	}
	if m.uploading {
		b.WriteString(accentStyle.Render("uploading..."))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(faintStyle.Render("tab switch field · ctrl+u upload header · enter save · esc cancel"))
	return cardStyle.Render(b.String())
}
