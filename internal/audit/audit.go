package audit

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/bwx-cli/bwx/internal/config"
)

// Entry is a single audit log record. Entries carry item metadata only:
// never field values, never session tokens, never passwords.
type Entry struct {
	Timestamp string `json:"ts"`        // RFC3339 with microseconds.
	ClientID  string `json:"client"`    // Per-install id from the config.
	Operation string `json:"op"`        // unlock, lock, sync, get, copy, totp, generate, list.
	ItemID    string `json:"item_id,omitempty"`
	ItemName  string `json:"item,omitempty"`
	Field     string `json:"field,omitempty"`  // For get/copy.
	Search    string `json:"search,omitempty"` // For list.
	Backend   string `json:"backend,omitempty"` // For unlock/lock (session backend).
}

// Log appends an entry to the audit log.
// If logging fails, the operation proceeds anyway.
func Log(entry Entry) {
	if entry.Timestamp == "" {
		entry.Timestamp = time.Now().UTC().Format("2006-01-02T15:04:05.000000Z")
	}

	logPath := config.AuditLogPath()
	if err := os.MkdirAll(filepath.Dir(logPath), 0700); err != nil {
		return
	}

	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return
	}
	defer f.Close()

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}

	_, _ = f.Write(append(data, '\n'))
}

// ReadEntries reads all entries from the audit log.
// Returns an empty slice if the log doesn't exist.
func ReadEntries() ([]Entry, error) {
	f, err := os.Open(config.AuditLogPath())
	if err != nil {
		if os.IsNotExist(err) {
			return []Entry{}, nil
		}
		return nil, err
	}
	defer f.Close()

	var entries []Entry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var entry Entry
		if err := json.Unmarshal(line, &entry); err != nil {
			// Skip lines damaged by interrupted writes.
			continue
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
