// Package ledger tracks which recordings have already been fully downloaded.
package ledger

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Ledger is a durable set of recording UUIDs, backed by an append-only text
// log (one UUID per line) mirrored in memory. Once a UUID is committed it is
// never re-processed by later runs unless the log file is removed by hand.
//
// Not safe for concurrent use; the sweep is single-threaded.
type Ledger struct {
	path string
	file *os.File
	done map[string]struct{}
}

// Open loads the log at path, creating an empty one if it does not exist.
func Open(path string) (*Ledger, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open ledger %s: %w", path, err)
	}

	done := make(map[string]struct{})
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if id := strings.TrimSpace(sc.Text()); id != "" {
			done[id] = struct{}{}
		}
	}
	if err := sc.Err(); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("read ledger %s: %w", path, err)
	}
	if _, err := f.Seek(0, io.SeekEnd); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("seek ledger %s: %w", path, err)
	}

	return &Ledger{path: path, file: f, done: done}, nil
}

// Contains reports whether uuid was already fully processed.
func (l *Ledger) Contains(uuid string) bool {
	_, ok := l.done[uuid]
	return ok
}

// Commit durably records uuid as fully processed. The line is synced to disk
// before the in-memory set is updated, so a crash cannot leave the set ahead
// of the log. Committing an already-present uuid is a no-op.
func (l *Ledger) Commit(uuid string) error {
	if _, ok := l.done[uuid]; ok {
		return nil
	}
	if _, err := fmt.Fprintln(l.file, uuid); err != nil {
		return fmt.Errorf("append ledger %s: %w", l.path, err)
	}
	if err := l.file.Sync(); err != nil {
		return fmt.Errorf("sync ledger %s: %w", l.path, err)
	}
	l.done[uuid] = struct{}{}
	return nil
}

// Len returns the number of recorded UUIDs.
func (l *Ledger) Len() int { return len(l.done) }

// Close releases the underlying log file handle.
func (l *Ledger) Close() error { return l.file.Close() }
