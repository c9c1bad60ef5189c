package index

import (
	"fmt"

	"github.com/Zuo-Peng/chatstat/internal/parse"
)

// Build opens an in-memory index and loads records into it. Record i gets
// seq i, so search results map straight back onto the slice.
func Build(records []parse.Record) (*DB, error) {
	db, err := OpenMemory()
	if err != nil {
		return nil, err
	}
	if err := Load(db, records); err != nil {
		db.Close()
		return nil, fmt.Errorf("load records: %w", err)
	}
	return db, nil
}

func Load(db *DB, records []parse.Record) error {
	tx, err := db.Raw().Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(
		`INSERT INTO messages (seq, date, time, day, sender, kind, body, line_number)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, r := range records {
		_, err := stmt.Exec(i, r.Date, r.Time, r.Day(), r.Sender, string(r.Kind), r.Body, r.Line)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}
