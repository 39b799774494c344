// Package auditlog records every safety decision to a rotating log file,
// the way the teacher's hook-logger captures raw hook payloads for
// debugging - except structured, one JSON object per decision, and kept
// bounded by size/age/backup-count instead of growing forever.
package auditlog

import (
	"encoding/json"
	"io"
	"time"

	"github.com/google/uuid"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Entry is one recorded decision.
type Entry struct {
	ID        string    `json:"id"`
	Time      time.Time `json:"time"`
	Command   string    `json:"command"`
	Decision  string    `json:"decision"`
	Reason    string    `json:"reason"`
}

// Logger appends Entry records as newline-delimited JSON to a rotating
// file.
type Logger struct {
	out io.WriteCloser
}

// Config controls the underlying lumberjack rotation policy.
type Config struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// New opens (creating if needed) a rotating audit log at cfg.Path. A zero
// Config falls back to lumberjack's own defaults for backups/age, capping
// size at 10MB.
func New(cfg Config) *Logger {
	maxSize := cfg.MaxSizeMB
	if maxSize == 0 {
		maxSize = 10
	}
	return &Logger{out: &lumberjack.Logger{
		Filename:   cfg.Path,
		MaxSize:    maxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   true,
	}}
}

// Record writes one decision entry, stamping it with a fresh random ID.
// A write failure is swallowed - the audit trail is best-effort and must
// never block or fail the decision it's recording.
func (l *Logger) Record(command, decision, reason string, at time.Time) {
	entry := Entry{
		ID:       uuid.NewString(),
		Time:     at,
		Command:  command,
		Decision: decision,
		Reason:   reason,
	}
	b, err := json.Marshal(entry)
	if err != nil {
		return
	}
	b = append(b, '\n')
	_, _ = l.out.Write(b)
}

// Close closes the underlying rotated file.
func (l *Logger) Close() error {
	return l.out.Close()
}
