package pet

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoshinoya/dogepet/internal/ai"
)

func TestSession_CapDropsOldest(t *testing.T) {
	s := NewSession(3)

	for i := 0; i < 5; i++ {
		s.Append(ai.RoleUser, fmt.Sprintf("msg %d", i))
	}

	w := s.Window()
	require.Len(t, w, 3)
	assert.Equal(t, "msg 2", w[0].Content)
	assert.Equal(t, "msg 4", w[2].Content)
}

func TestSession_WindowIsACopy(t *testing.T) {
	s := NewSession(4)
	s.Append(ai.RoleUser, "hello")

	w := s.Window()
	w[0].Content = "mutated"

	assert.Equal(t, "hello", s.Window()[0].Content)
}

func TestSession_ZeroCapUsesDefault(t *testing.T) {
	s := NewSession(0)
	for i := 0; i < DefaultHistoryCap+5; i++ {
		s.Append(ai.RoleUser, "x")
	}
	assert.Equal(t, DefaultHistoryCap, s.Len())
}
