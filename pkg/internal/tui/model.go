package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/glimmersocial/glimmer/pkg/internal/gateway"
	"github.com/glimmersocial/glimmer/pkg/internal/media"
	"github.com/glimmersocial/glimmer/pkg/internal/models"
)

// The four primary screens. Overlay state (selected post, open DM, edit mode)
// is orthogonal and lives in its own fields.
const (
	viewHome     = "home"
	viewSearch   = "search"
	viewMessages = "messages"
	viewProfile  = "profile"
)

// Model owns every piece of client-side state: the active screen, the fetched
// feed and profile lists, and the overlay states. All mutation happens in
// Update; network work runs in commands.
type Model struct {
	gw       *gateway.Client
	uploader *media.Uploader
	deviceID string

	user     *models.Account
	view     string
	posts    []models.Post
	accounts []models.Account
	results  []models.Post

	selectedPost *models.Post
	dm           *dmState
	isEditing    bool

	username   textinput.Model
	compose    textinput.Model
	attachPath textinput.Model
	probe      textinput.Model
	bio        textinput.Model
	headerPath textinput.Model

	// headerDraft stages an uploaded header URL; it is only persisted when
	// the profile is saved, never on cancel.
	headerDraft *string

	cursor    int
	uploading bool
	alert     string

	width  int
	height int
}

func New(gw *gateway.Client, uploader *media.Uploader, deviceID string) Model {
	username := textinput.New()
	username.Placeholder = "pick a username"
	username.CharLimit = 32
	username.Focus()

	compose := textinput.New()
	compose.Placeholder = "what's on your mind?"
	compose.CharLimit = 500

	attach := textinput.New()
	attach.Placeholder = "path to an image (optional)"

	probe := textinput.New()
	probe.Placeholder = "search posts"

	bio := textinput.New()
	bio.Placeholder = "tell people about yourself"
	bio.CharLimit = 512

	header := textinput.New()
	header.Placeholder = "path to a header image"

	return Model{
		gw:         gw,
		uploader:   uploader,
		deviceID:   deviceID,
		view:       viewHome,
		username:   username,
		compose:    compose,
		attachPath: attach,
		probe:      probe,
		bio:        bio,
		headerPath: header,
	}
}

func (m Model) Init() tea.Cmd {
	return m.checkUserCmd()
}

// fetchData re-fetches the whole feed and the whole profile list. Called on
// session start and after every mutation; failures leave prior state stale.
func (m Model) fetchData() tea.Cmd {
	return tea.Batch(m.fetchFeedCmd(), m.fetchAccountsCmd())
}
