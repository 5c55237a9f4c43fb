// Package statuslog provides the plain status/verbose reporting the CLI's
// --status and --verbose flags ask for: a thin wrapper over log.Logger
// writing timestamp-free, single-line messages to stderr, in the
// teacher's own doc-comment-over-structured-logging style (no algorithm
// package in the pack pulls in a logging dependency, so neither does
// this one).
package statuslog

import (
	"io"
	"log"
)

// Level controls which of Status/Verbose actually write anything.
type Level int

const (
	// Silent prints nothing.
	Silent Level = iota
	// Status prints one line per improvement.
	Status
	// Verbose prints a line for every candidate produced, in addition to
	// improvements.
	Verbose
)

// Logger reports CLI progress at a configured Level.
type Logger struct {
	level Level
	log   *log.Logger
}

// New returns a Logger at level, writing to w. log.Logger's own flags are
// cleared (no timestamp prefix) since spec.md describes a bare status
// line, not a timestamped log record.
func New(w io.Writer, level Level) *Logger {
	return &Logger{level: level, log: log.New(w, "", 0)}
}

// Improved reports that depth is a new best, if the configured level is
// at least Status.
func (l *Logger) Improved(depth int) {
	if l == nil || l.level < Status {
		return
	}
	l.log.Printf("improved: depth=%d", depth)
}

// Candidate reports that a candidate of the given depth was produced,
// only at Verbose level.
func (l *Logger) Candidate(depth int) {
	if l == nil || l.level < Verbose {
		return
	}
	l.log.Printf("candidate: depth=%d", depth)
}

// Notice prints a one-off message if the configured level is at least
// Status (used for the "no decomposition found" case).
func (l *Logger) Notice(msg string) {
	if l == nil || l.level < Status {
		return
	}
	l.log.Print(msg)
}
