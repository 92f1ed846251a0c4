package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/dkarlsson/radiodeck/internal/models"
	"github.com/dkarlsson/radiodeck/internal/services"
	"github.com/dkarlsson/radiodeck/internal/shared"
)

// volumeStep is how much one +/- keypress moves the volume.
const volumeStep = 5

// connectionLostMessage is the single generic message shown on poll failure.
const connectionLostMessage = "Connection lost"

// Model represents the TUI application state.
type Model struct {
	ctx       context.Context
	remote    services.Remote
	logger    *log.Logger
	pollEvery time.Duration

	width  int
	height int

	stationList list.Model
	stations    []models.Station

	// status is the last successful snapshot; a failed poll leaves it alone.
	status models.Status

	// playing and volume are local input state, flipped by keypresses and
	// reconciled by the next successful poll.
	playing bool
	volume  int

	message    string
	messageErr bool

	help help.Model
	keys keyMap
}

type tickMsg time.Time

type statusMsg struct {
	status models.Status
	err    error
}

type stationsMsg struct {
	stations []models.Station
	err      error
}

type commandDoneMsg struct {
	action string
	err    error
}

// NewModel creates a new TUI model with the provided dependencies.
func NewModel(ctx context.Context, remote services.Remote, pollEvery time.Duration, logger *log.Logger) *Model {
	if pollEvery <= 0 {
		pollEvery = 2 * time.Second
	}
	if logger == nil {
		logger = shared.NewLogger(nil)
	}

	sl := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	sl.Title = "Stations"
	sl.SetShowStatusBar(false)
	sl.SetFilteringEnabled(false)
	sl.SetShowHelp(false)

	return &Model{
		ctx:         ctx,
		remote:      remote,
		logger:      logger,
		pollEvery:   pollEvery,
		stationList: sl,
		volume:      50,
		help:        help.New(),
		keys:        newKeyMap(),
	}
}

// Init fetches the station list and first status snapshot and starts the poll tick.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.fetchStations(), m.fetchStatus(), tickCmd(m.pollEvery))
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.stationList.SetSize(msg.Width-4, msg.Height-10)
		return m, nil

	case tickMsg:
		// One status fetch per tick; the fetch runs as a command so the
		// render loop never blocks on the network.
		return m, tea.Batch(m.fetchStatus(), tickCmd(m.pollEvery))

	case statusMsg:
		return m.handleStatus(msg)

	case stationsMsg:
		return m.handleStations(msg)

	case commandDoneMsg:
		if msg.err != nil {
			m.logger.Warn("command failed", "action", msg.action, "err", msg.err)
			m.showMessage(fmt.Sprintf("%s failed", msg.action), true)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKeys(msg)
	}

	var cmd tea.Cmd
	m.stationList, cmd = m.stationList.Update(msg)
	return m, cmd
}

func (m *Model) handleStatus(msg statusMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		// Displayed station/track text stays as-is; only the message line
		// reports the failure.
		m.showMessage(connectionLostMessage, true)
		return m, nil
	}

	m.status = msg.status
	m.playing = msg.status.Playing
	m.volume = msg.status.Volume
	m.clearMessage()
	return m, nil
}

func (m *Model) handleStations(msg stationsMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.showMessage(connectionLostMessage, true)
		return m, nil
	}

	selected := m.stationList.Index()
	m.stations = msg.stations
	m.stationList.SetItems(stationItems(msg.stations))

	// Keep the cursor in bounds after a wholesale replacement.
	if len(msg.stations) > 0 && selected >= len(msg.stations) {
		m.stationList.Select(len(msg.stations) - 1)
	}

	m.clearMessage()
	return m, nil
}

func (m *Model) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.play):
		st, ok := m.selectedStation()
		if !ok {
			return m, nil
		}
		m.playing = true
		return m, m.playCmd(st.ID)

	case key.Matches(msg, m.keys.toggle):
		// The transport indicator flips exactly once per press, regardless of
		// what the command request later returns.
		m.playing = !m.playing
		if m.playing {
			st, ok := m.selectedStation()
			if !ok {
				m.playing = false
				m.showMessage("No station selected", true)
				return m, nil
			}
			return m, m.playCmd(st.ID)
		}
		return m, m.stopCmd()

	case key.Matches(msg, m.keys.volUp):
		m.volume = models.ClampVolume(m.volume + volumeStep)
		return m, m.setVolumeCmd(m.volume)

	case key.Matches(msg, m.keys.volDown):
		m.volume = models.ClampVolume(m.volume - volumeStep)
		return m, m.setVolumeCmd(m.volume)

	case key.Matches(msg, m.keys.refresh):
		return m, m.fetchStations()
	}

	var cmd tea.Cmd
	m.stationList, cmd = m.stationList.Update(msg)
	return m, cmd
}

// selectedStation returns the station under the cursor, if any.
func (m *Model) selectedStation() (models.Station, bool) {
	item := m.stationList.SelectedItem()
	if item == nil {
		return models.Station{}, false
	}
	si, ok := item.(stationItem)
	if !ok {
		return models.Station{}, false
	}
	return si.station, true
}

func (m *Model) showMessage(text string, isErr bool) {
	m.message = text
	m.messageErr = isErr
}

func (m *Model) clearMessage() {
	m.message = ""
	m.messageErr = false
}

// View renders the UI.
func (m *Model) View() string {
	title := styles.title.Render("Radio Deck")

	transport := "■ Stopped"
	if m.playing {
		transport = "▶ Playing"
	}

	nowPlaying := m.status.NowPlaying()
	if nowPlaying == "" {
		nowPlaying = "No station selected"
	}

	statusLine := fmt.Sprintf("%s   Volume: %d", transport, m.volume)

	message := ""
	if m.message != "" {
		if m.messageErr {
			message = styles.err.Render(m.message)
		} else {
			message = styles.ok.Render(m.message)
		}
	}

	helpView := m.help.ShortHelpView(m.keys.ShortHelp())

	return fmt.Sprintf(
		"%s\n%s\n\n%s\n%s\n%s\n\n%s",
		title,
		m.stationList.View(),
		styles.warn.Render(nowPlaying),
		statusLine,
		message,
		helpView,
	)
}

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *Model) fetchStatus() tea.Cmd {
	return func() tea.Msg {
		status, err := m.remote.Status(m.ctx)
		return statusMsg{status: status, err: err}
	}
}

func (m *Model) fetchStations() tea.Cmd {
	return func() tea.Msg {
		stations, err := m.remote.Stations(m.ctx)
		return stationsMsg{stations: stations, err: err}
	}
}

func (m *Model) playCmd(stationID int) tea.Cmd {
	return func() tea.Msg {
		return commandDoneMsg{action: "play", err: m.remote.Play(m.ctx, stationID)}
	}
}

func (m *Model) stopCmd() tea.Cmd {
	return func() tea.Msg {
		return commandDoneMsg{action: "stop", err: m.remote.Stop(m.ctx)}
	}
}

func (m *Model) setVolumeCmd(volume int) tea.Cmd {
	return func() tea.Msg {
		return commandDoneMsg{action: "volume", err: m.remote.SetVolume(m.ctx, volume)}
	}
}
