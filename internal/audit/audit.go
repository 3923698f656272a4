// Package audit provides structured event logging for launcher lifecycle
// events. Events are stored as JSON Lines (JSONL), one file per scope.
package audit

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// EventType classifies a lifecycle event.
type EventType string

const (
	EventInstall     EventType = "install"
	EventLaunch      EventType = "launch"
	EventSettings    EventType = "settings"
	EventCodes       EventType = "codes"
	EventCredentials EventType = "credentials"
	EventError       EventType = "error"
)

// ScopeLauncher is the scope for events not tied to a particular game.
const ScopeLauncher = "launcher"

// Event represents a single audit log entry.
type Event struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	Scope     string    `json:"scope"`
	Details   string    `json:"details,omitempty"`
}

// Logger writes and reads audit events. Events are stored in
// {eventsDir}/{scope}.events.jsonl.
type Logger struct {
	eventsDir string
}

// NewLogger creates a new audit logger rooted at eventsDir.
func NewLogger(eventsDir string) *Logger {
	return &Logger{eventsDir: eventsDir}
}

// eventPath returns the path to the JSONL event log for a scope.
func (l *Logger) eventPath(scope string) string {
	return filepath.Join(l.eventsDir, scope+".events.jsonl")
}

// Log appends an event to its scope's audit log.
func (l *Logger) Log(event Event) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	if event.Scope == "" {
		event.Scope = ScopeLauncher
	}

	path := l.eventPath(event.Scope)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create audit log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open audit log: %w", err)
	}
	defer f.Close()

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write event: %w", err)
	}

	return nil
}

// LogEvent is a convenience method that creates and logs an event.
func (l *Logger) LogEvent(eventType EventType, scope, details string) error {
	return l.Log(Event{
		Timestamp: time.Now(),
		Type:      eventType,
		Scope:     scope,
		Details:   details,
	})
}

// Events reads all events for a scope in chronological order.
func (l *Logger) Events(scope string) ([]Event, error) {
	path := l.eventPath(scope)

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open audit log: %w", err)
	}
	defer f.Close()

	var events []Event
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var event Event
		if err := json.Unmarshal(line, &event); err != nil {
			continue // Skip malformed lines
		}
		events = append(events, event)
	}

	if err := scanner.Err(); err != nil {
		return events, fmt.Errorf("error reading audit log: %w", err)
	}

	return events, nil
}

// Remove deletes the audit log for a scope.
func (l *Logger) Remove(scope string) error {
	path := l.eventPath(scope)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
