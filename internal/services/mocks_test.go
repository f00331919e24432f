package services

import (
	"fmt"

	"github.com/vvka-141/codesnap/pkg/codesnap"
)

type mockBuilder struct {
	result *codesnap.Result
	err    error
	calls  int
	cfg    codesnap.Config
}

func (m *mockBuilder) Scan(cfg codesnap.Config) (*codesnap.Result, error) {
	m.calls++
	m.cfg = cfg
	return m.result, m.err
}

type mockWriter struct {
	summary  codesnap.PersistSummary
	err      error
	calls    int
	snapshot *codesnap.Snapshot
	path     string
}

func (m *mockWriter) Persist(snapshot *codesnap.Snapshot, outputPath string) (codesnap.PersistSummary, error) {
	m.calls++
	m.snapshot = snapshot
	m.path = outputPath
	return m.summary, m.err
}

type recordingLogger struct {
	info    []string
	warn    []string
	verbose []string
	errors  []string
}

func (l *recordingLogger) Verbose(format string, args ...interface{}) {
	l.verbose = append(l.verbose, fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Info(format string, args ...interface{}) {
	l.info = append(l.info, fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Warn(format string, args ...interface{}) {
	l.warn = append(l.warn, fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Error(format string, args ...interface{}) {
	l.errors = append(l.errors, fmt.Sprintf(format, args...))
}
