package pet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriceIntent(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"how is dogecoin doing today", true},
		{"what is the price of Dogecoin", true},
		{"is DOGE COIN up or down", true},
		{"dogecoin market trend?", true},
		{"what is dogecoin", false},
		{"tell me a joke about dogecoin", false},
		{"what is the price of bread", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, PriceIntent(tt.text), "text: %q", tt.text)
	}
}
