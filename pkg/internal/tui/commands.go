package tui

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/glimmersocial/glimmer/pkg/internal/gateway"
	"github.com/glimmersocial/glimmer/pkg/internal/models"
	"github.com/glimmersocial/glimmer/pkg/internal/ws"
	"github.com/rs/zerolog/log"
)

const requestTimeout = 30 * time.Second

type sessionMsg struct {
	account models.Account
}

type sessionFailedMsg struct {
	err error
}

type feedMsg struct {
	posts []models.Post
}

type accountsMsg struct {
	accounts []models.Account
}

type searchMsg struct {
	posts []models.Post
}

type postImageUploadedMsg struct {
	content string
	url     string
	err     error
}

type postSubmittedMsg struct {
	err error
}

type headerUploadedMsg struct {
	url string
	err error
}

type profileSavedMsg struct {
	err error
}

type dmHistoryMsg struct {
	messages []models.Message
}

type dmSubscribedMsg struct {
	sub *gateway.Subscription
}

type dmEventMsg struct {
	event ws.Event
	ok    bool
}

type messageSentMsg struct {
	err error
}

// checkUserCmd restores the session for this device. A silent no-op when the
// backend does not know the device yet.
func (m Model) checkUserCmd() tea.Cmd {
	gw, deviceID := m.gw, m.deviceID
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		account, err := gw.SignInAnonymous(ctx, deviceID, "")
		if err != nil {
			return sessionFailedMsg{err}
		}
		return sessionMsg{account}
	}
}

func (m Model) signUpCmd(username string) tea.Cmd {
	gw, deviceID := m.gw, m.deviceID
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		account, err := gw.SignInAnonymous(ctx, deviceID, username)
		if err != nil {
			return sessionFailedMsg{err}
		}
		return sessionMsg{account}
	}
}

// Read failures are swallowed: the command yields no message and the previous
// state simply stays on screen.
func (m Model) fetchFeedCmd() tea.Cmd {
	gw := m.gw
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		posts, err := gw.ListPosts(ctx, gateway.PostQuery{})
		if err != nil {
			log.Warn().Err(err).Msg("An error occurred when fetching the feed...")
			return nil
		}
		return feedMsg{posts}
	}
}

func (m Model) fetchAccountsCmd() tea.Cmd {
	gw := m.gw
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		accounts, err := gw.ListAccounts(ctx)
		if err != nil {
			log.Warn().Err(err).Msg("An error occurred when fetching profiles...")
			return nil
		}
		return accountsMsg{accounts}
	}
}

func (m Model) searchCmd(probe string) tea.Cmd {
	gw := m.gw
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		posts, err := gw.ListPosts(ctx, gateway.PostQuery{Probe: probe})
		if err != nil {
			log.Warn().Err(err).Msg("An error occurred when searching posts...")
			return nil
		}
		return searchMsg{posts}
	}
}

func (m Model) uploadPostImageCmd(path, content string) tea.Cmd {
	uploader := m.uploader
	return func() tea.Msg {
		src, err := os.Open(path)
		if err != nil {
			return postImageUploadedMsg{content: content, err: err}
		}
		defer src.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		url, err := uploader.Upload(ctx, filepath.Base(path), src)
		return postImageUploadedMsg{content: content, url: url, err: err}
	}
}

func (m Model) submitPostCmd(content string, imageURL *string) tea.Cmd {
	gw := m.gw
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		_, err := gw.CreatePost(ctx, content, imageURL)
		return postSubmittedMsg{err}
	}
}

func (m Model) uploadHeaderCmd(path string) tea.Cmd {
	uploader := m.uploader
	return func() tea.Msg {
		src, err := os.Open(path)
		if err != nil {
			return headerUploadedMsg{err: err}
		}
		defer src.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		url, err := uploader.Upload(ctx, filepath.Base(path), src)
		return headerUploadedMsg{url: url, err: err}
	}
}

func (m Model) saveProfileCmd(bio string, headerURL *string) tea.Cmd {
	gw := m.gw
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		_, err := gw.UpdateMyAccount(ctx, bio, headerURL)
		return profileSavedMsg{err}
	}
}

func (m Model) fetchHistoryCmd(with string) tea.Cmd {
	gw := m.gw
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		messages, err := gw.ListMessages(ctx, with)
		if err != nil {
			log.Warn().Err(err).Msg("An error occurred when fetching conversation history...")
			return nil
		}
		return dmHistoryMsg{messages}
	}
}

func (m Model) subscribeCmd() tea.Cmd {
	gw := m.gw
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		sub, err := gw.Subscribe(ctx)
		if err != nil {
			log.Warn().Err(err).Msg("An error occurred when subscribing to the message channel...")
			return nil
		}
		return dmSubscribedMsg{sub}
	}
}

// waitForEvent blocks on the subscription until the next row-insert event
// arrives; the update loop re-arms it after each delivery.
func waitForEvent(sub *gateway.Subscription) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-sub.Events
		return dmEventMsg{event: event, ok: ok}
	}
}

func (m Model) sendMessageCmd(to, content string) tea.Cmd {
	gw := m.gw
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		err := gw.SendMessage(ctx, to, content, nil)
		return messageSentMsg{err}
	}
}

// sortFeed keeps the feed non-increasing by creation time no matter what
// order the rows arrived in.
func sortFeed(posts []models.Post) []models.Post {
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	return posts
}
