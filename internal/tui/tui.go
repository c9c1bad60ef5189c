package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/Zuo-Peng/chatstat/internal/index"
	"github.com/Zuo-Peng/chatstat/internal/parse"
	"github.com/Zuo-Peng/chatstat/internal/search"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const debounceDelay = 200 * time.Millisecond

type tuiMode int

const (
	modeSearch tuiMode = iota
	modeList
)

type resultsMsg struct {
	query   string
	sender  string
	results []search.Result
	err     error
}

type debounceTickMsg struct {
	query string
}

// Session is one parsed chat log and its in-memory index.
type Session struct {
	DB      *index.DB
	Records []parse.Record
	Title   string
}

type model struct {
	session Session
	opts    search.Options
	mode    tuiMode
	query   string

	// focusSender narrows results to one sender; toggled from the selection.
	focusSender string

	results    []search.Result
	cursor     int
	listOffset int

	input      textinput.Model
	preview    viewport.Model
	previewSeq int // record shown in the preview, -1 for none

	width, height int
	ready         bool
	quitting      bool
	selected      *search.Result
}

func newModel(s Session, mode tuiMode, query string, opts search.Options) model {
	in := textinput.New()
	in.Prompt = "> "
	in.PromptStyle = styleInputPrompt
	in.TextStyle = styleInput
	in.CharLimit = 256
	in.SetValue(query)
	in.Focus()
	if mode == modeList {
		in.Placeholder = "Filter..."
	} else {
		in.Placeholder = "Search..."
	}

	return model{
		session:    s,
		opts:       opts,
		mode:       mode,
		query:      query,
		input:      in,
		preview:    viewport.New(0, 0),
		previewSeq: -1,
	}
}

// Run starts the search TUI and blocks until it exits. A message chosen
// with Enter is copied to the clipboard.
func Run(s Session, query string, opts search.Options) error {
	return run(newModel(s, modeSearch, query, opts))
}

// RunList starts the TUI over every message in file order.
func RunList(s Session, opts search.Options) error {
	return run(newModel(s, modeList, "", opts))
}

func run(m model) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}

	if fm := final.(model); fm.selected != nil {
		return copyMessage(fm.session.Records, fm.selected.Seq)
	}
	return nil
}

// copyMessage copies the selected record to the clipboard, printing it
// instead when no clipboard is available.
func copyMessage(records []parse.Record, seq int) error {
	if seq < 0 || seq >= len(records) {
		return fmt.Errorf("message not found: %d", seq)
	}
	text := formatClip(records[seq])

	if err := clipboard.WriteAll(text); err != nil {
		fmt.Println(text)
		return nil
	}
	fmt.Printf("Copied to clipboard: %s\n", text)
	return nil
}

func formatClip(r parse.Record) string {
	body := r.Body
	if r.Kind == parse.KindMedia && body == "" {
		body = "<media>"
	}
	return fmt.Sprintf("[%s %s] %s: %s", r.Date, r.Time, r.Sender, body)
}

func (m model) Init() tea.Cmd {
	if m.mode == modeList || m.query != "" {
		return tea.Batch(textinput.Blink, m.fetch(m.query))
	}
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.onResize(msg)
	case tea.KeyMsg:
		return m.onKey(msg)
	case tea.MouseMsg:
		return m.onMouse(msg)

	case debounceTickMsg:
		// stale ticks are dropped: the query moved on since scheduling
		if msg.query != m.query {
			return m, nil
		}
		return m, m.fetch(msg.query)

	case resultsMsg:
		return m.onResults(msg)

	case previewRenderedMsg:
		sel, ok := m.selection()
		if msg.seq == m.previewSeq || !ok || sel.Seq != msg.seq {
			return m, nil
		}
		m.preview.SetContent(msg.content)
		if msg.hitLine > 0 {
			m.preview.SetYOffset(msg.hitLine)
		} else {
			m.preview.GotoTop()
		}
		m.previewSeq = msg.seq
	}
	return m, nil
}

func (m model) onResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width, m.height = msg.Width, msg.Height
	m.ready = true
	m.preview = newViewport(m.previewWidth(), m.panelHeight())
	m.previewSeq = -1 // width changed, wrap again
	return m, m.loadCurrentPreview()
}

func (m model) onKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, keys.Enter):
		if sel, ok := m.selection(); ok {
			m.selected = &sel
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case key.Matches(msg, keys.Up):
		return m.moveCursor(m.cursor - 1)
	case key.Matches(msg, keys.Down):
		return m.moveCursor(m.cursor + 1)
	case key.Matches(msg, keys.First):
		return m.moveCursor(0)
	case key.Matches(msg, keys.Last):
		return m.moveCursor(len(m.results) - 1)

	case key.Matches(msg, keys.Sender):
		return m.toggleSender()

	case key.Matches(msg, keys.PreviewUp):
		m.preview.LineUp(m.panelHeight() / 2)
		return m, nil
	case key.Matches(msg, keys.PreviewDn):
		m.preview.LineDown(m.panelHeight() / 2)
		return m, nil
	case key.Matches(msg, keys.PageUp):
		m.preview.LineUp(m.panelHeight())
		return m, nil
	case key.Matches(msg, keys.PageDown):
		m.preview.LineDown(m.panelHeight())
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if q := m.input.Value(); q != m.query {
		m.query = q
		return m, tea.Batch(cmd, debounce(q))
	}
	return m, cmd
}

func (m model) onMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !m.ready || len(m.results) == 0 {
		return m, nil
	}

	region, item := m.hitTest(msg.X, msg.Y)
	wheel := msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown

	switch region {
	case regionList:
		switch {
		case msg.Button == tea.MouseButtonWheelUp:
			m.listOffset = max(m.listOffset-1, 0)
		case msg.Button == tea.MouseButtonWheelDown:
			maxOffset := max(len(m.results)-m.panelHeight()/linesPerItem, 0)
			m.listOffset = min(m.listOffset+1, maxOffset)
		case msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress:
			if item < len(m.results) && item != m.cursor {
				return m.moveCursor(item)
			}
		}
	case regionPreview:
		if wheel {
			var cmd tea.Cmd
			m.preview, cmd = m.preview.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m model) onResults(msg resultsMsg) (tea.Model, tea.Cmd) {
	if msg.query != m.query || msg.sender != m.focusSender {
		return m, nil
	}

	m.cursor, m.listOffset = 0, 0
	m.previewSeq = -1
	if msg.err != nil {
		m.results = nil
		m.preview.SetContent("Error: " + msg.err.Error())
		return m, nil
	}

	m.results = msg.results
	if len(m.results) == 0 {
		m.preview.SetContent("")
		return m, nil
	}
	return m, m.loadCurrentPreview()
}

// moveCursor selects result i, clamped to the list.
func (m model) moveCursor(i int) (tea.Model, tea.Cmd) {
	if len(m.results) == 0 {
		return m, nil
	}
	i = max(0, min(i, len(m.results)-1))
	if i == m.cursor {
		return m, nil
	}
	m.cursor = i
	m.adjustListScroll(m.panelHeight())
	return m, m.loadCurrentPreview()
}

// toggleSender narrows the results to the sender of the selected message,
// or clears that narrowing when it is already set.
func (m model) toggleSender() (tea.Model, tea.Cmd) {
	if m.focusSender != "" {
		m.focusSender = ""
	} else if sel, ok := m.selection(); ok {
		m.focusSender = sel.Sender
	} else {
		return m, nil
	}
	return m, m.fetch(m.query)
}

func (m model) selection() (search.Result, bool) {
	if m.cursor < 0 || m.cursor >= len(m.results) {
		return search.Result{}, false
	}
	return m.results[m.cursor], true
}

func (m model) View() string {
	if m.quitting || !m.ready {
		return ""
	}

	listW, previewW, panelH := m.listWidth(), m.previewWidth(), m.panelHeight()

	listPanel := stylePanelBorder.
		Width(listW).
		Height(panelH).
		Render(m.renderList(listW, panelH))

	m.preview.Width = previewW
	m.preview.Height = panelH
	previewPanel := styleActiveBorder.
		Width(previewW).
		Height(panelH).
		Render(m.preview.View())

	panels := lipgloss.JoinHorizontal(lipgloss.Top, listPanel, previewPanel)
	return lipgloss.JoinVertical(lipgloss.Left, m.input.View(), panels, m.statusBar())
}

// layout: the list takes 40% of the width, the preview the rest

func (m model) listWidth() int {
	if m.width <= 0 {
		return 40
	}
	return max(m.width*40/100-4, 20)
}

func (m model) previewWidth() int {
	if m.width <= 0 {
		return 60
	}
	return max(m.width*60/100-4, 20)
}

func (m model) panelHeight() int {
	if m.height <= 0 {
		return 20
	}
	// input row, status bar and two borders
	return max(m.height-6, 5)
}

type mouseRegion int

const (
	regionNone mouseRegion = iota
	regionList
	regionPreview
)

// hitTest maps terminal coordinates to a panel region and list item index.
func (m model) hitTest(x, y int) (mouseRegion, int) {
	top := 2 // input row + top border
	if y < top || y >= top+m.panelHeight() {
		return regionNone, -1
	}

	lw := m.listWidth()
	switch {
	case x >= 1 && x <= lw:
		return regionList, m.listOffset + (y-top)/linesPerItem
	case x > lw+2:
		return regionPreview, -1
	}
	return regionNone, -1
}

func (m model) statusBar() string {
	parts := []string{fmt.Sprintf("%d of %d messages", len(m.results), len(m.session.Records))}
	if m.focusSender != "" {
		parts = append(parts, "sender: "+m.focusSender)
	}
	parts = append(parts,
		"up/dn navigate",
		"C-u/C-d preview",
		"C-f sender",
		"Enter copy",
		"Esc quit",
	)

	bar := styleStatusBar.Render(strings.Join(parts, " | "))
	if m.session.Title == "" {
		return bar
	}
	return styleTitle.Render(m.session.Title) + bar
}

// fetch runs the query for the current mode. Search mode with no query
// shows nothing; list mode with no query shows every message.
func (m model) fetch(query string) tea.Cmd {
	db := m.session.DB
	mode := m.mode
	opts := m.opts
	opts.Query = query
	sender := m.focusSender
	if sender != "" {
		opts.Sender = sender
	}

	return func() tea.Msg {
		msg := resultsMsg{query: query, sender: sender}
		switch {
		case query != "":
			msg.results, msg.err = search.Search(db, opts)
		case mode == modeList:
			msg.results, msg.err = search.ListAll(db, opts)
		}
		return msg
	}
}

func debounce(query string) tea.Cmd {
	return tea.Tick(debounceDelay, func(time.Time) tea.Msg {
		return debounceTickMsg{query: query}
	})
}

func (m model) loadCurrentPreview() tea.Cmd {
	sel, ok := m.selection()
	if !ok || sel.Seq == m.previewSeq {
		return nil
	}
	return loadPreviewCmd(m.session.Records, m.session.Title, sel.Seq, m.query, m.previewWidth())
}
