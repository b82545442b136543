package pet

import "github.com/hoshinoya/dogepet/internal/ai"

// DefaultHistoryCap bounds the retained conversation window.
const DefaultHistoryCap = 12

// Session is the bounded conversation history. It lives for the process
// lifetime and is mutated only on the runtime goroutine: the user append
// happens at submit time and the assistant append happens in the posted
// completion handler, so both mutation points share one owner.
type Session struct {
	cap  int
	msgs []ai.Message
}

func NewSession(cap int) *Session {
	if cap <= 0 {
		cap = DefaultHistoryCap
	}
	return &Session{cap: cap}
}

// Append records a message, dropping the oldest entries beyond the cap.
func (s *Session) Append(role, content string) {
	s.msgs = append(s.msgs, ai.Message{Role: role, Content: content})
	if len(s.msgs) > s.cap {
		s.msgs = s.msgs[len(s.msgs)-s.cap:]
	}
}

// Window returns a copy of the retained history, oldest first.
func (s *Session) Window() []ai.Message {
	out := make([]ai.Message, len(s.msgs))
	copy(out, s.msgs)
	return out
}

func (s *Session) Len() int {
	return len(s.msgs)
}
