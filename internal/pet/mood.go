package pet

import (
	"regexp"
	"strings"
)

var moodTag = regexp.MustCompile(`<mood:([A-Z]+)>`)

var moodStates = map[string]State{
	"HAPPY": StateHappy,
	"LAUGH": StateLaugh,
	"WOW":   StateWow,
	"SAD":   StateSad,
	"THINK": StateThinking,
}

// ParseMood splits a completion reply into display text and the mood to
// animate. An absent or unrecognized tag defaults to happy; the tag is
// always stripped from the displayed text.
func ParseMood(reply string) (string, State) {
	state := StateHappy
	if m := moodTag.FindStringSubmatch(reply); m != nil {
		if s, ok := moodStates[m[1]]; ok {
			state = s
		}
	}
	text := strings.TrimSpace(moodTag.ReplaceAllString(reply, ""))
	return text, state
}
