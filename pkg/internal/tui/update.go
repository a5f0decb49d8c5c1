package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/glimmersocial/glimmer/pkg/internal/models"
	"github.com/samber/lo"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case sessionMsg:
		account := msg.account
		m.user = &account
		m.view = viewHome
		m.bio.SetValue(account.Bio)
		m.username.Blur()
		return m, m.fetchData()

	case sessionFailedMsg:
		// No session yet: stay on the login screen without complaint.
		return m, nil

	case feedMsg:
		m.posts = sortFeed(msg.posts)
		if m.cursor >= len(m.posts) {
			m.cursor = 0
		}
		return m, nil

	case accountsMsg:
		m.accounts = msg.accounts
		if m.user != nil {
			for _, account := range msg.accounts {
				if account.ID == m.user.ID {
					account := account
					m.user = &account
					break
				}
			}
		}
		return m, nil

	case searchMsg:
		m.results = msg.posts
		return m, nil

	case postImageUploadedMsg:
		m.uploading = false
		var imageURL *string
		if msg.err != nil {
			// The insert still proceeds without the image.
			m.alert = "Failed to upload image: " + msg.err.Error()
		} else {
			url := msg.url
			imageURL = &url
		}
		return m, m.submitPostCmd(msg.content, imageURL)

	case postSubmittedMsg:
		// Insert failures are unreported; the compose field resets and the
		// feed is re-fetched either way.
		m.compose.SetValue("")
		m.attachPath.SetValue("")
		return m, m.fetchData()

	case headerUploadedMsg:
		m.uploading = false
		if msg.err != nil {
			m.alert = "Failed to upload header: " + msg.err.Error()
			return m, nil
		}
		url := msg.url
		m.headerDraft = &url
		m.headerPath.SetValue("")
		return m, nil

	case profileSavedMsg:
		if msg.err != nil {
			m.alert = "Failed to update profile: " + msg.err.Error()
		}
		m.isEditing = false
		m.headerDraft = nil
		return m, m.fetchData()

	case dmHistoryMsg:
		if m.dm != nil {
			m.dm.messages = nil
			for _, message := range msg.messages {
				m.dm.append(message)
			}
		}
		return m, nil

	case dmSubscribedMsg:
		if m.dm == nil {
			// Overlay closed before the dial finished.
			msg.sub.Close()
			return m, nil
		}
		m.dm.sub = msg.sub
		return m, waitForEvent(msg.sub)

	case dmEventMsg:
		if !msg.ok || m.dm == nil || m.dm.sub == nil {
			return m, nil
		}
		if record := msg.event.Message; record != nil && m.user != nil {
			if record.BelongsToPair(m.user.ID, m.dm.target.ID) {
				m.dm.append(*record)
			}
		}
		return m, waitForEvent(m.dm.sub)

	case messageSentMsg:
		// Send failures are unreported; a successful send shows up through
		// the subscription echo.
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		if m.dm != nil {
			m.dm.teardown()
		}
		return m, tea.Quit
	}

	// A blocking alert eats every key until dismissed.
	if len(m.alert) > 0 {
		m.alert = ""
		return m, nil
	}

	if m.user == nil {
		return m.handleLoginKey(msg)
	}
	if m.dm != nil {
		return m.handleDMKey(msg)
	}
	if m.selectedPost != nil {
		if msg.Type == tea.KeyEsc || msg.Type == tea.KeyEnter {
			m.selectedPost = nil
		}
		return m, nil
	}
	if m.isEditing {
		return m.handleEditKey(msg)
	}

	return m.handleViewKey(msg)
}

func (m Model) handleLoginKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEnter {
		name := strings.TrimSpace(m.username.Value())
		if len(name) == 0 {
			return m, nil
		}
		return m, m.signUpCmd(name)
	}

	var cmd tea.Cmd
	m.username, cmd = m.username.Update(msg)
	return m, cmd
}

func (m Model) handleDMKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.dm.teardown()
		m.dm = nil
		return m, nil
	case tea.KeyEnter:
		content := strings.TrimSpace(m.dm.input.Value())
		if len(content) == 0 {
			return m, nil
		}
		// Optimistic clear; the message appears once the echo arrives.
		m.dm.input.SetValue("")
		return m, m.sendMessageCmd(m.dm.target.Name, content)
	case tea.KeyUp:
		m.dm.follow = false
		if m.dm.scroll > 0 {
			m.dm.scroll--
		}
		return m, nil
	case tea.KeyDown:
		m.dm.scroll++
		if m.dm.scroll >= len(m.dm.messages) {
			m.dm.scroll = len(m.dm.messages)
			m.dm.follow = true
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.dm.input, cmd = m.dm.input.Update(msg)
	return m, cmd
}

func (m Model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		// Cancel: nothing staged gets persisted, including an already
		// uploaded header.
		m.isEditing = false
		m.headerDraft = nil
		m.bio.SetValue(m.user.Bio)
		m.headerPath.SetValue("")
		return m, nil
	case tea.KeyTab:
		if m.bio.Focused() {
			m.bio.Blur()
			m.headerPath.Focus()
		} else {
			m.headerPath.Blur()
			m.bio.Focus()
		}
		return m, nil
	case tea.KeyCtrlU:
		path := strings.TrimSpace(m.headerPath.Value())
		if len(path) == 0 || m.uploading {
			return m, nil
		}
		m.uploading = true
		return m, m.uploadHeaderCmd(path)
	case tea.KeyEnter:
		headerURL := m.user.HeaderURL
		if m.headerDraft != nil {
			headerURL = m.headerDraft
		}
		return m, m.saveProfileCmd(m.bio.Value(), headerURL)
	}

	var cmd tea.Cmd
	if m.bio.Focused() {
		m.bio, cmd = m.bio.Update(msg)
	} else {
		m.headerPath, cmd = m.headerPath.Update(msg)
	}
	return m, cmd
}

func (m Model) handleViewKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.compose.Focused() || m.attachPath.Focused() {
		return m.handleComposeKey(msg)
	}
	if m.probe.Focused() {
		return m.handleProbeKey(msg)
	}

	switch msg.String() {
	case "1":
		m.view = viewHome
		m.cursor = 0
	case "2":
		m.view = viewSearch
		m.cursor = 0
	case "3":
		m.view = viewMessages
		m.cursor = 0
	case "4":
		m.view = viewProfile
		m.cursor = 0
	case "r":
		return m, m.fetchData()
	case "n":
		if m.view == viewHome {
			m.compose.Focus()
		}
	case "a":
		if m.view == viewHome {
			m.attachPath.Focus()
		}
	case "/":
		if m.view == viewSearch {
			m.probe.Focus()
		}
	case "e":
		if m.view == viewProfile {
			m.isEditing = true
			m.bio.SetValue(m.user.Bio)
			m.bio.Focus()
		}
	case "j", "down":
		m.cursor++
		if limit := m.listLength(); m.cursor >= limit {
			m.cursor = max(limit-1, 0)
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "enter":
		return m.handleSelect()
	}

	return m, nil
}

func (m Model) handleComposeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.compose.Blur()
		m.attachPath.Blur()
		return m, nil
	case tea.KeyTab:
		if m.compose.Focused() {
			m.compose.Blur()
			m.attachPath.Focus()
		} else {
			m.attachPath.Blur()
			m.compose.Focus()
		}
		return m, nil
	case tea.KeyEnter:
		return m.handlePost()
	}

	var cmd tea.Cmd
	if m.compose.Focused() {
		m.compose, cmd = m.compose.Update(msg)
	} else {
		m.attachPath, cmd = m.attachPath.Update(msg)
	}
	return m, cmd
}

// handlePost guards on non-empty trimmed content and an authenticated user,
// uploads the attachment first when one is set, then inserts the post.
func (m Model) handlePost() (tea.Model, tea.Cmd) {
	if m.user == nil || m.uploading {
		return m, nil
	}

	content := m.compose.Value()
	if len(strings.TrimSpace(content)) == 0 {
		return m, nil
	}

	if path := strings.TrimSpace(m.attachPath.Value()); len(path) > 0 {
		m.uploading = true
		return m, m.uploadPostImageCmd(path, content)
	}

	return m, m.submitPostCmd(content, nil)
}

func (m Model) handleProbeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.probe.Blur()
		return m, nil
	case tea.KeyEnter:
		probe := strings.TrimSpace(m.probe.Value())
		if len(probe) == 0 {
			return m, nil
		}
		return m, m.searchCmd(probe)
	}

	var cmd tea.Cmd
	m.probe, cmd = m.probe.Update(msg)
	return m, cmd
}

func (m Model) handleSelect() (tea.Model, tea.Cmd) {
	switch m.view {
	case viewHome:
		if m.cursor < len(m.posts) {
			post := m.posts[m.cursor]
			m.selectedPost = &post
		}
	case viewSearch:
		if m.cursor < len(m.results) {
			post := m.results[m.cursor]
			m.selectedPost = &post
		}
	case viewMessages:
		peers := m.peers()
		if m.cursor < len(peers) {
			m.dm = newDMState(peers[m.cursor])
			return m, tea.Batch(m.fetchHistoryCmd(m.dm.target.Name), m.subscribeCmd())
		}
	}

	return m, nil
}

// peers is everyone except the signed-in account.
func (m Model) peers() []models.Account {
	return lo.Filter(m.accounts, func(account models.Account, _ int) bool {
		return m.user == nil || account.ID != m.user.ID
	})
}

func (m Model) listLength() int {
	switch m.view {
	case viewHome:
		return len(m.posts)
	case viewSearch:
		return len(m.results)
	case viewMessages:
		return len(m.peers())
	}
	return 0
}
