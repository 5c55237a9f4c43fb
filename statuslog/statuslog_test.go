package statuslog_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/treedepth/statuslog"
)

func TestSilent_PrintsNothing(t *testing.T) {
	var buf bytes.Buffer
	l := statuslog.New(&buf, statuslog.Silent)

	l.Improved(3)
	l.Candidate(5)
	l.Notice("no decomposition found")

	assert.Empty(t, buf.String())
}

func TestStatus_AllowsImprovedAndNoticeButNotCandidate(t *testing.T) {
	var buf bytes.Buffer
	l := statuslog.New(&buf, statuslog.Status)

	l.Candidate(5)
	assert.Empty(t, buf.String())

	l.Improved(3)
	assert.Contains(t, buf.String(), "improved: depth=3")

	l.Notice("no decomposition found")
	assert.Contains(t, buf.String(), "no decomposition found")
}

func TestVerbose_AllowsCandidate(t *testing.T) {
	var buf bytes.Buffer
	l := statuslog.New(&buf, statuslog.Verbose)

	l.Candidate(7)
	assert.Contains(t, buf.String(), "candidate: depth=7")
}

func TestNilLogger_IsSafeToCall(t *testing.T) {
	var l *statuslog.Logger
	assert.NotPanics(t, func() {
		l.Improved(1)
		l.Candidate(1)
		l.Notice("x")
	})
}
