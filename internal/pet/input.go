package pet

import (
	"strings"

	"github.com/hoshinoya/dogepet/internal/models"
)

// InputSession tracks the single text-entry bubble. At most one is open
// system-wide; submit and close both clear the tracked id so a stale
// bubble is never repositioned or double-closed.
type InputSession struct {
	bubbles *BubbleManager
	id      string
	send    func(string)
	abort   func()
}

func NewInputSession(bubbles *BubbleManager) *InputSession {
	return &InputSession{bubbles: bubbles}
}

// Open creates the input bubble. It is a no-op returning false when one is
// already open. send fires on a non-empty submit; abort fires when the
// bubble goes away without anything being sent.
func (s *InputSession) Open(anchor models.Frame, send func(string), abort func()) bool {
	if s.id != "" {
		return false
	}
	id, ok := s.bubbles.Create(models.BubbleInput, "", anchor)
	if !ok {
		return false
	}
	s.id = id
	s.send = send
	s.abort = abort
	return true
}

func (s *InputSession) IsOpen() bool {
	return s.id != ""
}

// Submit delivers the typed text. The bubble closes unconditionally; the
// callback only fires for non-empty trimmed text, otherwise the abort path
// runs so the owner can unwind.
func (s *InputSession) Submit(raw string) {
	if s.id == "" {
		return
	}
	text := strings.TrimSpace(raw)
	send, abort := s.send, s.abort
	s.clear()
	if text != "" {
		if send != nil {
			send(text)
		}
	} else if abort != nil {
		abort()
	}
}

// Close dismisses the bubble without sending anything.
func (s *InputSession) Close() {
	if s.id == "" {
		return
	}
	abort := s.abort
	s.clear()
	if abort != nil {
		abort()
	}
}

func (s *InputSession) clear() {
	id := s.id
	s.id = ""
	s.send = nil
	s.abort = nil
	s.bubbles.Close(id)
}
