package pet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMood(t *testing.T) {
	tests := []struct {
		reply    string
		wantText string
		wantMood State
	}{
		{"Great! <mood:HAPPY>", "Great!", StateHappy},
		{"Hilarious! <mood:LAUGH>", "Hilarious!", StateLaugh},
		{"To the moon! <mood:WOW>", "To the moon!", StateWow},
		{"Oh no. <mood:SAD>", "Oh no.", StateSad},
		{"Hmm. <mood:THINK>", "Hmm.", StateThinking},
		{"no tag at all", "no tag at all", StateHappy},
		{"weird tag <mood:ANGRY>", "weird tag", StateHappy},
		{"<mood:SAD> tag first", "tag first", StateSad},
	}

	for _, tt := range tests {
		text, mood := ParseMood(tt.reply)
		assert.Equal(t, tt.wantText, text, "reply: %q", tt.reply)
		assert.Equal(t, tt.wantMood, mood, "reply: %q", tt.reply)
	}
}
