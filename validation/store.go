// Package validation keeps validation messages keyed by field
// identifiers: the per-field state a form surface reads to decorate
// inputs and decide whether submission may proceed.
package validation

import (
	"errors"
	"fmt"
	"strings"

	"form-binder/field"
)

// Severity represents the severity level of a message.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Message is a single validation outcome for one field.
type Message struct {
	// Severity of the message.
	Severity Severity
	// Code is a stable identifier for this kind of message.
	Code string
	// Text is the human-readable description.
	Text string
}

// String returns a formatted message string.
func (m Message) String() string {
	if m.Code != "" {
		return fmt.Sprintf("[%s] %s", m.Code, m.Text)
	}

	return m.Text
}

// Store accumulates validation messages per field identifier. Iteration
// follows first-insertion order per field for deterministic output. Not
// safe for concurrent use.
type Store struct {
	messages map[field.Identifier][]Message
	order    []field.Identifier
}

// NewStore creates an empty message store.
func NewStore() *Store {
	return &Store{messages: make(map[field.Identifier][]Message)}
}

// Add appends a message for the given field.
func (s *Store) Add(id field.Identifier, msg Message) {
	if _, seen := s.messages[id]; !seen {
		s.order = append(s.order, id)
	}

	s.messages[id] = append(s.messages[id], msg)
}

// AddError appends an error-severity message for the given field.
func (s *Store) AddError(id field.Identifier, code, text string) {
	s.Add(id, Message{Severity: SeverityError, Code: code, Text: text})
}

// AddWarning appends a warning-severity message for the given field.
func (s *Store) AddWarning(id field.Identifier, code, text string) {
	s.Add(id, Message{Severity: SeverityWarning, Code: code, Text: text})
}

// AddInfo appends an info-severity message for the given field.
func (s *Store) AddInfo(id field.Identifier, code, text string) {
	s.Add(id, Message{Severity: SeverityInfo, Code: code, Text: text})
}

// Messages returns the messages recorded for the given field.
func (s *Store) Messages(id field.Identifier) []Message {
	return s.messages[id]
}

// Fields returns the identifiers with recorded messages, in
// first-insertion order.
func (s *Store) Fields() []field.Identifier {
	return s.order
}

// IsValid returns true if the given field has no error-severity messages.
func (s *Store) IsValid(id field.Identifier) bool {
	for _, m := range s.messages[id] {
		if m.Severity == SeverityError {
			return false
		}
	}

	return true
}

// HasErrors returns true if any field has an error-severity message.
func (s *Store) HasErrors() bool {
	for _, id := range s.order {
		if !s.IsValid(id) {
			return true
		}
	}

	return false
}

// Clear removes all messages recorded for the given field.
func (s *Store) Clear(id field.Identifier) {
	if _, seen := s.messages[id]; !seen {
		return
	}

	delete(s.messages, id)

	for i, other := range s.order {
		if other == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Reset removes all messages for all fields.
func (s *Store) Reset() {
	s.messages = make(map[field.Identifier][]Message)
	s.order = nil
}

// Error returns a combined error from all error-severity messages, or
// nil if the store holds none.
func (s *Store) Error() error {
	var parts []string

	for _, id := range s.order {
		for _, m := range s.messages[id] {
			if m.Severity == SeverityError {
				parts = append(parts, id.String()+": "+m.String())
			}
		}
	}

	if len(parts) == 0 {
		return nil
	}

	return errors.New(strings.Join(parts, "; "))
}
