package tui

import (
	"strings"
	"testing"

	"github.com/Zuo-Peng/chatstat/internal/parse"
	"github.com/Zuo-Peng/chatstat/internal/search"
)

func TestFormatResultLine(t *testing.T) {
	r := search.Result{Seq: 3, Date: "01/02/2024", Time: "10:00", Sender: "Alice", Kind: "text", Snippet: "hello\tthere"}
	lines := formatResultLine(r, 60, true)
	if len(lines) != linesPerItem {
		t.Fatalf("got %d lines", len(lines))
	}
	if !strings.Contains(lines[0], "Alice") || !strings.Contains(lines[0], "01/02/2024 10:00  ") {
		t.Errorf("line 1 = %q", lines[0])
	}
	if !strings.Contains(lines[1], "hello there") {
		t.Errorf("line 2 = %q", lines[1])
	}

	media := search.Result{Date: "01/02/2024", Time: "10:00", Sender: "Bob", Kind: "media"}
	lines = formatResultLine(media, 60, false)
	if !strings.Contains(lines[1], "<media>") {
		t.Errorf("media line = %q", lines[1])
	}
}

func TestAdjustListScroll(t *testing.T) {
	m := model{cursor: 10}
	m.adjustListScroll(8) // 4 items visible
	if m.listOffset != 7 {
		t.Errorf("offset = %d", m.listOffset)
	}
	m.cursor = 2
	m.adjustListScroll(8)
	if m.listOffset != 2 {
		t.Errorf("offset = %d", m.listOffset)
	}
}

func TestFormatClip(t *testing.T) {
	got := formatClip(parse.Record{Date: "01/02/2024", Time: "10:00", Sender: "Bob", Kind: parse.KindMedia})
	if got != "[01/02/2024 10:00] Bob: <media>" {
		t.Errorf("got %q", got)
	}
	got = formatClip(parse.Record{Date: "01/02/2024", Time: "10:01", Sender: "Alice", Body: "hi", Kind: parse.KindText})
	if got != "[01/02/2024 10:01] Alice: hi" {
		t.Errorf("got %q", got)
	}
}

func TestCopyMessage_OutOfRange(t *testing.T) {
	if err := copyMessage(nil, 0); err == nil {
		t.Fatal("expected error")
	}
}

func TestPreviewCmd(t *testing.T) {
	recs := []parse.Record{
		{Date: "01/02/2024", Time: "10:00", Sender: "Alice", Body: "one", Kind: parse.KindText},
		{Date: "01/02/2024", Time: "10:01", Sender: "Bob", Body: "two", Kind: parse.KindText},
	}
	msg := loadPreviewCmd(recs, "chat.txt", 1, "", 80)()
	pm, ok := msg.(previewRenderedMsg)
	if !ok {
		t.Fatalf("got %T", msg)
	}
	if pm.seq != 1 || !strings.Contains(pm.content, "two") {
		t.Errorf("got %+v", pm)
	}
}

func testModel(mode tuiMode, n int) model {
	m := newModel(Session{}, mode, "", search.Options{})
	for i := 0; i < n; i++ {
		m.results = append(m.results, search.Result{Seq: i, Sender: "Alice"})
	}
	return m
}

func TestMoveCursorClamps(t *testing.T) {
	m := testModel(modeList, 3)
	next, _ := m.moveCursor(10)
	if got := next.(model).cursor; got != 2 {
		t.Errorf("cursor = %d", got)
	}
	next, _ = next.(model).moveCursor(-4)
	if got := next.(model).cursor; got != 0 {
		t.Errorf("cursor = %d", got)
	}
}

func TestOnResults_DropsStale(t *testing.T) {
	m := testModel(modeSearch, 0)
	m.query = "pizza"
	next, _ := m.onResults(resultsMsg{query: "piz", results: []search.Result{{Seq: 1}}})
	if len(next.(model).results) != 0 {
		t.Error("stale results applied")
	}
	next, _ = m.onResults(resultsMsg{query: "pizza", results: []search.Result{{Seq: 1}}})
	if len(next.(model).results) != 1 {
		t.Error("current results dropped")
	}
}

func TestToggleSender(t *testing.T) {
	m := testModel(modeList, 2)
	next, cmd := m.toggleSender()
	if next.(model).focusSender != "Alice" || cmd == nil {
		t.Fatalf("focus = %q", next.(model).focusSender)
	}
	next, _ = next.(model).toggleSender()
	if next.(model).focusSender != "" {
		t.Errorf("focus not cleared: %q", next.(model).focusSender)
	}
}

func TestHitTest(t *testing.T) {
	m := testModel(modeList, 10)
	m.width, m.height = 100, 30
	if region, item := m.hitTest(5, 2); region != regionList || item != 0 {
		t.Errorf("got %v %d", region, item)
	}
	if region, item := m.hitTest(5, 5); region != regionList || item != 1 {
		t.Errorf("got %v %d", region, item)
	}
	if region, _ := m.hitTest(90, 10); region != regionPreview {
		t.Errorf("got %v", region)
	}
	if region, _ := m.hitTest(5, 0); region != regionNone {
		t.Errorf("got %v", region)
	}
}
