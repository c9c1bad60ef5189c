package index

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const schema = `
PRAGMA cache_size = -64000;

CREATE TABLE IF NOT EXISTS messages (
    seq         INTEGER PRIMARY KEY,
    date        TEXT NOT NULL,
    time        TEXT NOT NULL,
    day         TEXT NOT NULL DEFAULT '',
    sender      TEXT NOT NULL,
    kind        TEXT NOT NULL DEFAULT 'text',
    body        TEXT NOT NULL,
    line_number INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS messages_sender ON messages(sender);
CREATE INDEX IF NOT EXISTS messages_day ON messages(day);

CREATE VIRTUAL TABLE IF NOT EXISTS messages_fts USING fts5(
    body,
    content=messages,
    content_rowid=seq,
    tokenize='unicode61'
);

CREATE TRIGGER IF NOT EXISTS messages_ai AFTER INSERT ON messages BEGIN
    INSERT INTO messages_fts(rowid, body) VALUES (new.seq, new.body);
END;
`

// DB is an in-memory message index that lives for one analysis run.
type DB struct {
	db *sql.DB
}

// OpenMemory opens an empty in-memory index with the schema applied.
func OpenMemory() (*DB, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	// every new connection would get its own empty :memory: database
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return &DB{db: db}, nil
}

func (d *DB) Close() error {
	return d.db.Close()
}

func (d *DB) Raw() *sql.DB {
	return d.db
}

func (d *DB) MessageCount() (int, error) {
	var n int
	err := d.db.QueryRow("SELECT COUNT(*) FROM messages").Scan(&n)
	return n, err
}

func (d *DB) FTSCount() (int, error) {
	var n int
	err := d.db.QueryRow("SELECT COUNT(*) FROM messages_fts").Scan(&n)
	return n, err
}

type MessageRow struct {
	Seq        int
	Date       string
	Time       string
	Day        string
	Sender     string
	Kind       string
	Body       string
	LineNumber int
}

func (d *DB) GetMessage(seq int) (*MessageRow, error) {
	var m MessageRow
	err := d.db.QueryRow(
		"SELECT seq, date, time, day, sender, kind, body, line_number FROM messages WHERE seq = ?",
		seq,
	).Scan(&m.Seq, &m.Date, &m.Time, &m.Day, &m.Sender, &m.Kind, &m.Body, &m.LineNumber)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}
