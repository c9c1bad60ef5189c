package stats

import (
	"strings"
	"testing"

	"github.com/Zuo-Peng/chatstat/internal/parse"
)

func rec(sender, clock, body string) parse.Record {
	return parse.Record{Date: "01/02/2024", Time: clock, Sender: sender, Body: body, Kind: parse.KindText}
}

func media(sender, clock string) parse.Record {
	return parse.Record{Date: "01/02/2024", Time: clock, Sender: sender, Kind: parse.KindMedia}
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil, DefaultOptions())

	if s.Total != 0 || s.Media != 0 || s.Text != 0 {
		t.Errorf("totals = %d/%d/%d", s.Total, s.Media, s.Text)
	}
	if s.Corpus != "" || !s.CorpusEmpty() {
		t.Errorf("corpus = %q", s.Corpus)
	}
	if s.HasAvgWords || s.AvgWords != 0 {
		t.Errorf("avg words = %v %v", s.AvgWords, s.HasAvgWords)
	}
	if len(s.Hours) != 0 || len(s.Senders) != 0 {
		t.Errorf("hours=%v senders=%v", s.Hours, s.Senders)
	}

	report := s.Report()
	if !strings.Contains(report, "Corpus: empty") || !strings.Contains(report, unavailable) {
		t.Errorf("report missing degenerate markers:\n%s", report)
	}
}

func TestSummarize_Totals(t *testing.T) {
	records := []parse.Record{
		rec("Alice", "10:00", "hello there"),
		media("Bob", "10:01"),
		rec("Bob", "10:02", "hi"),
		rec("Alice", "11:00", "how are you today"),
		media("Alice", "11:30"),
	}
	s := Summarize(records, DefaultOptions())

	if s.Total != 5 || s.Media != 2 || s.Text != 3 {
		t.Fatalf("totals = %d/%d/%d", s.Total, s.Media, s.Text)
	}

	sum := 0
	for _, st := range s.Senders {
		sum += st.Total
		if st.Text+st.Media != st.Total {
			t.Errorf("%s: text+media != total", st.Name)
		}
	}
	if sum != s.Total {
		t.Errorf("sender totals sum to %d, want %d", sum, s.Total)
	}

	if s.Senders[0].Name != "Alice" || s.Senders[0].Total != 3 {
		t.Errorf("senders[0] = %+v", s.Senders[0])
	}
	if got := s.Senders[0].MediaPercent(); got < 33.3 || got > 33.4 {
		t.Errorf("alice media%% = %v", got)
	}

	// (2 + 1 + 4) / 3
	if !s.HasAvgWords || s.AvgWords < 2.33 || s.AvgWords > 2.34 {
		t.Errorf("avg words = %v", s.AvgWords)
	}
	if s.Corpus != "hello there hi how are you today" {
		t.Errorf("corpus = %q", s.Corpus)
	}
}

func TestSummarize_SenderTiesKeepFirstSeen(t *testing.T) {
	records := []parse.Record{
		rec("Zed", "10:00", "a"),
		rec("Amy", "10:00", "b"),
		rec("Bob", "10:00", "c"),
		rec("Bob", "10:00", "d"),
	}
	s := Summarize(records, DefaultOptions())

	var names []string
	for _, st := range s.Senders {
		names = append(names, st.Name)
	}
	if got := strings.Join(names, ","); got != "Bob,Zed,Amy" {
		t.Errorf("order = %s", got)
	}
}

func TestSummarize_AllMedia(t *testing.T) {
	s := Summarize([]parse.Record{media("Alice", "10:00"), media("Bob", "10:00")}, DefaultOptions())

	if s.HasAvgWords {
		t.Error("expected no average for all-media input")
	}
	if !s.CorpusEmpty() {
		t.Errorf("corpus = %q", s.Corpus)
	}
	if s.Senders[0].TextPercent() != 0 || s.Senders[0].MediaPercent() != 100 {
		t.Errorf("percentages = %+v", s.Senders[0])
	}
}

func TestSummarize_ZeroTotalPercent(t *testing.T) {
	var st SenderStats
	if st.MediaPercent() != 0 || st.TextPercent() != 0 {
		t.Error("expected 0% for empty sender")
	}
}

func TestSummarize_Emoji(t *testing.T) {
	records := []parse.Record{
		rec("Alice", "10:00", "great 😀😀 see you 🎉"),
		rec("Bob", "10:00", "❤️ thumbs 👍🏽"),
		{Sender: "Bob", Time: "10:00", Kind: parse.KindMedia, Body: "😀 caption"},
	}
	s := Summarize(records, DefaultOptions())

	// media bodies are excluded; variation selector and skin tone are not counted
	if s.Emoji != 5 {
		t.Errorf("emoji = %d", s.Emoji)
	}
	if len(s.TopEmoji) == 0 || s.TopEmoji[0].Emoji != "😀" || s.TopEmoji[0].Count != 2 {
		t.Errorf("top emoji = %+v", s.TopEmoji)
	}
}

func TestSummarize_InjectedClassifier(t *testing.T) {
	opts := DefaultOptions()
	opts.IsEmoji = func(r rune) bool { return r == '!' }

	s := Summarize([]parse.Record{rec("Alice", "10:00", "hi! yes!! 😀")}, opts)
	if s.Emoji != 3 {
		t.Errorf("emoji = %d", s.Emoji)
	}
}

func TestSummarize_Hours(t *testing.T) {
	records := []parse.Record{
		rec("A", "09:00", "x"),
		rec("A", "9:30 PM", "x"),
		rec("A", "21:10", "x"),
		rec("A", "08:00", "x"),
		rec("A", "08:15:00", "x"),
		rec("A", "07:00", "x"),
		rec("A", "06:00", "x"),
		rec("A", "05:00", "x"),
		rec("A", "12:30 AM", "x"),
		rec("A", "bogus", "x"),
	}
	s := Summarize(records, DefaultOptions())

	want := []HourCount{{8, 2}, {21, 2}, {0, 1}, {5, 1}, {6, 1}}
	if len(s.Hours) != len(want) {
		t.Fatalf("hours = %+v", s.Hours)
	}
	for i := range want {
		if s.Hours[i] != want[i] {
			t.Errorf("hours[%d] = %+v, want %+v", i, s.Hours[i], want[i])
		}
	}
	if s.Untimed != 1 {
		t.Errorf("untimed = %d", s.Untimed)
	}
	if s.Total != 10 {
		t.Errorf("total = %d", s.Total)
	}
}

func TestAnalyze(t *testing.T) {
	res, err := parse.Parse(strings.NewReader(strings.Join([]string{
		"01/02/2024, 10:00 - Alice: Hello there",
		"this continues",
		"01/02/2024, 10:05 - Bob: <Media omitted>",
	}, "\n")), parse.DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}

	report, corpus := Analyze(res.Records)
	if corpus != "Hello there this continues" {
		t.Errorf("corpus = %q", corpus)
	}
	for _, want := range []string{"Totals", "Messages: 2", "Senders", "Alice: 1 messages", "Emoji", "Active hours", "10:00  2 messages", "Span:     2024-02-01 to 2024-02-01"} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q:\n%s", want, report)
		}
	}
}

func TestAnalyze_NoticeOnly(t *testing.T) {
	res, err := parse.Parse(strings.NewReader("Messages and calls are end-to-end encrypted."), parse.DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	_, corpus := Analyze(res.Records)
	if corpus != "" {
		t.Errorf("corpus = %q", corpus)
	}
}
