package tui

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/glimmersocial/glimmer/pkg/internal/gateway"
	"github.com/glimmersocial/glimmer/pkg/internal/media"
	"github.com/glimmersocial/glimmer/pkg/internal/models"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	gw := gateway.NewClient("http://127.0.0.1:0")
	uploader := media.NewUploader("http://127.0.0.1:0/image/upload", "test")
	return New(gw, uploader, "11111111-2222-3333-4444-555555555555")
}

func signedIn(t *testing.T, name string, id uint) Model {
	t.Helper()
	m := newTestModel(t)
	next, _ := m.Update(sessionMsg{account: models.Account{
		BaseModel: models.BaseModel{ID: id},
		Name:      name,
	}})
	return next.(Model)
}

func keyPress(t *testing.T, m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func TestSessionSeedsUserAndMovesHome(t *testing.T) {
	m := newTestModel(t)
	if m.user != nil {
		t.Fatal("expected unauthenticated start")
	}

	next, cmd := m.Update(sessionMsg{account: models.Account{
		BaseModel: models.BaseModel{ID: 7},
		Name:      "alice",
		Bio:       "hello",
	}})
	m = next.(Model)

	if m.user == nil || m.user.Name != "alice" {
		t.Fatalf("expected user alice, got %+v", m.user)
	}
	if m.view != viewHome {
		t.Fatalf("expected home view, got %s", m.view)
	}
	if m.bio.Value() != "hello" {
		t.Fatalf("expected bio seeded, got %q", m.bio.Value())
	}
	if cmd == nil {
		t.Fatal("expected a fetch command after session start")
	}
}

func TestSessionFailureIsSilent(t *testing.T) {
	m := newTestModel(t)
	next, cmd := m.Update(sessionFailedMsg{err: errors.New("no session")})
	m = next.(Model)

	if m.user != nil {
		t.Fatal("expected to stay unauthenticated")
	}
	if len(m.alert) > 0 {
		t.Fatalf("expected no alert, got %q", m.alert)
	}
	if cmd != nil {
		t.Fatal("expected no retry command")
	}
}

func TestFeedOrderingNonIncreasing(t *testing.T) {
	m := signedIn(t, "alice", 1)

	base := time.Now()
	posts := []models.Post{
		{BaseModel: models.BaseModel{ID: 1, CreatedAt: base.Add(-2 * time.Hour)}, Content: "old"},
		{BaseModel: models.BaseModel{ID: 3, CreatedAt: base}, Content: "new"},
		{BaseModel: models.BaseModel{ID: 2, CreatedAt: base.Add(-1 * time.Hour)}, Content: "middle"},
	}

	next, _ := m.Update(feedMsg{posts: posts})
	m = next.(Model)

	for i := 1; i < len(m.posts); i++ {
		if m.posts[i].CreatedAt.After(m.posts[i-1].CreatedAt) {
			t.Fatalf("feed out of order at %d: %v after %v", i, m.posts[i].CreatedAt, m.posts[i-1].CreatedAt)
		}
	}
	if m.posts[0].Content != "new" {
		t.Fatalf("expected newest first, got %q", m.posts[0].Content)
	}
}

func TestEmptyPostIsNotSubmitted(t *testing.T) {
	m := signedIn(t, "alice", 1)
	m.compose.Focus()
	m.compose.SetValue("   ")

	m, cmd := keyPress(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Fatal("whitespace-only compose must not produce a submit command")
	}
	if m.compose.Value() != "   " {
		t.Fatalf("compose should be untouched, got %q", m.compose.Value())
	}
}

func TestUnauthenticatedCannotPost(t *testing.T) {
	m := newTestModel(t)
	m.compose.Focus()
	m.compose.SetValue("hello world")

	if _, cmd := m.handlePost(); cmd != nil {
		t.Fatal("post must be guarded on an authenticated user")
	}
}

func TestPostSubmissionResetsComposeAndRefetches(t *testing.T) {
	m := signedIn(t, "alice", 1)
	m.compose.Focus()
	m.compose.SetValue("hello world")

	m, cmd := keyPress(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a submit command")
	}
	if m.compose.Value() != "hello world" {
		t.Fatal("compose resets only after the insert round trip")
	}

	// Even a failed insert resets the compose field and re-fetches.
	next, cmd := m.Update(postSubmittedMsg{err: errors.New("boom")})
	m = next.(Model)
	if m.compose.Value() != "" {
		t.Fatalf("expected compose reset, got %q", m.compose.Value())
	}
	if len(m.alert) > 0 {
		t.Fatalf("post insert failures are unreported, got alert %q", m.alert)
	}
	if cmd == nil {
		t.Fatal("expected a re-fetch command")
	}
}

func TestPostWithAttachmentUploadsFirst(t *testing.T) {
	m := signedIn(t, "alice", 1)
	m.compose.Focus()
	m.compose.SetValue("hello world")
	m.attachPath.SetValue("/tmp/pic.png")

	m, cmd := keyPress(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected an upload command")
	}
	if !m.uploading {
		t.Fatal("expected the uploading flag to gate resubmission")
	}

	// While uploading, another enter is a no-op.
	if _, cmd := m.handlePost(); cmd != nil {
		t.Fatal("resubmission must be gated while uploading")
	}
}

func TestPostImageUploadFailureAlertsAndProceeds(t *testing.T) {
	m := signedIn(t, "alice", 1)
	m.uploading = true

	next, cmd := m.Update(postImageUploadedMsg{content: "hello world", err: errors.New("network down")})
	m = next.(Model)

	if len(m.alert) == 0 {
		t.Fatal("expected a failure alert")
	}
	if m.uploading {
		t.Fatal("uploading flag should clear")
	}
	if cmd == nil {
		t.Fatal("the insert still proceeds, without the image")
	}
}

func TestHeaderUploadThenCancelDoesNotPersist(t *testing.T) {
	m := signedIn(t, "alice", 1)
	m.view = viewProfile
	m.isEditing = true

	next, _ := m.Update(headerUploadedMsg{url: "https://img.example.com/h.png"})
	m = next.(Model)
	if m.headerDraft == nil {
		t.Fatal("expected the uploaded header to be staged")
	}

	m, cmd := keyPress(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if cmd != nil {
		t.Fatal("cancel must not issue a save")
	}
	if m.isEditing {
		t.Fatal("expected edit mode to end")
	}
	if m.headerDraft != nil {
		t.Fatal("staged header must be dropped on cancel")
	}
}

func TestHeaderUploadFailureShowsAlert(t *testing.T) {
	m := signedIn(t, "alice", 1)
	m.view = viewProfile
	m.isEditing = true
	m.uploading = true

	next, _ := m.Update(headerUploadedMsg{err: errors.New("network down")})
	m = next.(Model)

	if len(m.alert) == 0 {
		t.Fatal("expected a failure alert")
	}
	if !m.isEditing {
		t.Fatal("edit state is unaffected by a failed header upload")
	}
}

func TestProfileSaveFailureAlertsButExitsEditMode(t *testing.T) {
	m := signedIn(t, "alice", 1)
	m.isEditing = true

	next, cmd := m.Update(profileSavedMsg{err: errors.New("conflict")})
	m = next.(Model)

	if len(m.alert) == 0 {
		t.Fatal("expected the raw error surfaced in an alert")
	}
	if m.isEditing {
		t.Fatal("edit mode ends regardless of outcome")
	}
	if cmd == nil {
		t.Fatal("a re-fetch happens regardless of outcome")
	}
}

func TestAlertBlocksAndDismisses(t *testing.T) {
	m := signedIn(t, "alice", 1)
	m.alert = "something broke"

	m, cmd := keyPress(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'2'}})
	if cmd != nil {
		t.Fatal("alert should eat the key")
	}
	if len(m.alert) > 0 {
		t.Fatal("alert should dismiss on any key")
	}
	if m.view != viewHome {
		t.Fatal("the eaten key must not navigate")
	}
}

func TestNavigationSwitchesPrimaryViews(t *testing.T) {
	m := signedIn(t, "alice", 1)

	for key, want := range map[string]string{
		"2": viewSearch,
		"3": viewMessages,
		"4": viewProfile,
		"1": viewHome,
	} {
		var cmd tea.Cmd
		m, cmd = keyPress(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
		_ = cmd
		if m.view != want {
			t.Fatalf("key %q: expected view %s, got %s", key, want, m.view)
		}
	}
}

func TestAccountsRefreshUpdatesOwnProfile(t *testing.T) {
	m := signedIn(t, "alice", 1)

	next, _ := m.Update(accountsMsg{accounts: []models.Account{
		{BaseModel: models.BaseModel{ID: 2}, Name: "bob"},
		{BaseModel: models.BaseModel{ID: 1}, Name: "alice", Bio: "updated"},
	}})
	m = next.(Model)

	if m.user.Bio != "updated" {
		t.Fatalf("expected own profile refreshed, got %q", m.user.Bio)
	}
	if len(m.peers()) != 1 || m.peers()[0].Name != "bob" {
		t.Fatalf("expected peers to exclude self, got %+v", m.peers())
	}
}

func TestAuthorWithoutProfileRendersUndefined(t *testing.T) {
	post := models.Post{Content: "orphan"}
	if got := authorName(post); got != "undefined" {
		t.Fatalf("expected undefined, got %q", got)
	}
}
