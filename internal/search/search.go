package search

import (
	"database/sql"
	"fmt"
	"strings"
	"unicode"

	"github.com/Zuo-Peng/chatstat/internal/index"
)

// DefaultLimit caps Search when Options.Limit is unset.
const DefaultLimit = 100

// Result is one matching message. Seq is the record's position in the
// parsed export and doubles as its index row id.
type Result struct {
	Seq     int
	Date    string
	Time    string
	Sender  string
	Kind    string
	Snippet string
	Rank    float64 // bm25, lower is better; zero for LIKE and list results
}

type Options struct {
	Query  string
	Sender string // "" = all
	Kind   string // "" = all, "text", "media"
	Range  Range
	Limit  int
}

const selectMessages = `SELECT m.seq, m.date, m.time, m.sender, m.kind, m.body FROM messages m`

// Search runs a full-text query. Queries with Han characters, and queries
// FTS5 rejects as syntax, fall back to a substring match.
func Search(db *index.DB, opts Options) ([]Result, error) {
	if opts.Limit <= 0 {
		opts.Limit = DefaultLimit
	}
	if strings.TrimSpace(opts.Query) == "" {
		return ListAll(db, opts)
	}

	if !containsCJK(opts.Query) {
		results, err := searchFTS(db, opts)
		if err == nil {
			return results, nil
		}
		// free text such as "don't" or "a-b" is not valid FTS5 syntax
	}
	return searchLike(db, opts)
}

// ListAll returns matching messages in file order. The query is ignored.
func ListAll(db *index.DB, opts Options) ([]Result, error) {
	where, args := filterClause(opts)
	q := selectMessages + where + " ORDER BY m.seq"
	if opts.Limit > 0 {
		q += " LIMIT ?"
		args = append(args, opts.Limit)
	}
	return queryBodies(db, q, args, "", 40)
}

func searchFTS(db *index.DB, opts Options) ([]Result, error) {
	where, args := filterClause(opts, "messages_fts MATCH ?")
	q := `SELECT m.seq, m.date, m.time, m.sender, m.kind,
			snippet(messages_fts, 0, '>>>', '<<<', '...', 16),
			bm25(messages_fts) AS rank
		FROM messages_fts JOIN messages m ON messages_fts.rowid = m.seq` +
		where + " ORDER BY rank, m.seq LIMIT ?"
	args = append([]any{opts.Query}, args...)
	args = append(args, opts.Limit)

	rows, err := db.Raw().Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("search query: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		if err := rows.Scan(&r.Seq, &r.Date, &r.Time, &r.Sender, &r.Kind, &r.Snippet, &r.Rank); err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

func searchLike(db *index.DB, opts Options) ([]Result, error) {
	where, args := filterClause(opts, "m.body LIKE ?")
	args = append([]any{"%" + opts.Query + "%"}, args...)
	args = append(args, opts.Limit)
	return queryBodies(db, selectMessages+where+" ORDER BY m.seq LIMIT ?", args, opts.Query, 30)
}

// queryBodies runs a query selecting full bodies and cuts snippets
// around query.
func queryBodies(db *index.DB, q string, args []any, query string, context int) ([]Result, error) {
	rows, err := db.Raw().Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("search query: %w", err)
	}
	defer rows.Close()
	return scanBodies(rows, query, context)
}

func scanBodies(rows *sql.Rows, query string, context int) ([]Result, error) {
	var results []Result
	for rows.Next() {
		var r Result
		var body string
		if err := rows.Scan(&r.Seq, &r.Date, &r.Time, &r.Sender, &r.Kind, &body); err != nil {
			return nil, err
		}
		r.Snippet = makeSnippet(body, query, context)
		results = append(results, r)
	}
	return results, rows.Err()
}

// filterClause builds the WHERE clause for the sender, kind and date
// filters, preceded by any extra conditions. Extra conditions carry their
// own args, which the caller prepends.
func filterClause(opts Options, extra ...string) (string, []any) {
	conds := append([]string(nil), extra...)
	var args []any

	if opts.Sender != "" {
		conds = append(conds, "m.sender = ?")
		args = append(args, opts.Sender)
	}
	if opts.Kind != "" {
		conds = append(conds, "m.kind = ?")
		args = append(args, opts.Kind)
	}
	// undated messages fall outside any bounded range
	if !opts.Range.Start.IsZero() {
		conds = append(conds, "m.day != '' AND m.day >= ?")
		args = append(args, opts.Range.Start.Format(dayLayout))
	}
	if !opts.Range.End.IsZero() {
		conds = append(conds, "m.day != '' AND m.day <= ?")
		args = append(args, opts.Range.End.Format(dayLayout))
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// containsCJK reports whether s holds Han characters, which the unicode61
// tokenizer does not segment.
func containsCJK(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool { return unicode.Is(unicode.Han, r) }) >= 0
}

// makeSnippet cuts text to context runes either side of the first
// case-insensitive match of query, marking the match with >>> <<<.
// Without a match it returns the head of text.
func makeSnippet(text, query string, context int) string {
	runes := []rune(text)
	pos := -1
	if query != "" {
		lower := strings.ToLower(text)
		// case folding that changes byte length would misplace the match
		if idx := strings.Index(lower, strings.ToLower(query)); idx >= 0 && len(lower) == len(text) {
			pos = len([]rune(text[:idx]))
		}
	}
	if pos < 0 {
		if len(runes) > context*2 {
			return string(runes[:context*2]) + "..."
		}
		return text
	}

	n := min(len([]rune(query)), len(runes)-pos)
	start := max(pos-context, 0)
	end := min(pos+n+context, len(runes))

	var b strings.Builder
	if start > 0 {
		b.WriteString("...")
	}
	b.WriteString(string(runes[start:pos]))
	b.WriteString(">>>" + string(runes[pos:pos+n]) + "<<<")
	b.WriteString(string(runes[pos+n : end]))
	if end < len(runes) {
		b.WriteString("...")
	}
	return b.String()
}
