// Package assets is the animation frame source for the pet. Frames are
// built-in multi-line sprite blocks keyed by animation name; a missing key
// is reported with ErrNotFound and never panics into animation logic.
package assets

import "errors"

var ErrNotFound = errors.New("assets: animation not found")

// Library serves ordered frame sequences by animation key.
type Library struct {
	frames map[string][]string
}

func NewLibrary() *Library {
	return &Library{frames: builtin}
}

// Frames returns the ordered frame sequence bound to key.
func (l *Library) Frames(key string) ([]string, error) {
	seq, ok := l.frames[key]
	if !ok || len(seq) == 0 {
		return nil, ErrNotFound
	}
	out := make([]string, len(seq))
	copy(out, seq)
	return out, nil
}

// builtin sprite art, 5 rows per frame. The idle sequence fakes the
// spinning-coin look by narrowing the face.
var builtin = map[string][]string{
	"idle": {
		"  .-\"\"-.  \n" +
			" / o  o \\ \n" +
			"|  \\__/  |\n" +
			" \\      / \n" +
			"  '-..-'  ",
		"   .-\"-.  \n" +
			"  | o o | \n" +
			"  | \\_/ | \n" +
			"  |     | \n" +
			"   '-.-'  ",
		"    .-.   \n" +
			"    |o|   \n" +
			"    |-|   \n" +
			"    |_|   \n" +
			"    '-'   ",
		"   .-\"-.  \n" +
			"  | o o | \n" +
			"  | \\_/ | \n" +
			"  |     | \n" +
			"   '-.-'  ",
	},
	"happy": {
		"  .-\"\"-.  \n" +
			" / ^  ^ \\ \n" +
			"|   ww   |\n" +
			" \\ \\__/ / \n" +
			"  '-..-'  ",
		"  .-\"\"-.  \n" +
			" / ^  ^ \\ \n" +
			"|   ww   |\n" +
			" \\ /--\\ / \n" +
			"  '-..-'  ",
	},
	"laugh": {
		"  .-\"\"-.  \n" +
			" / >  < \\ \n" +
			"|  \\AA/  |\n" +
			" \\ haha / \n" +
			"  '-..-'  ",
		"  .-\"\"-.  \n" +
			" / >  < \\ \n" +
			"|  /VV\\  |\n" +
			" \\ HAHA / \n" +
			"  '-..-'  ",
	},
	"wow": {
		"  .-\"\"-.  \n" +
			" / O  O \\ \n" +
			"|   oo   |\n" +
			" \\ wow! / \n" +
			"  '-..-'  ",
		"          \n" +
			"          \n" +
			"   wow    \n" +
			"          \n" +
			"          ",
		"  .-\"\"-.  \n" +
			" / O  O \\ \n" +
			"|   oo   |\n" +
			" \\ WOW! / \n" +
			"  '-..-'  ",
	},
	"sad": {
		"  .-\"\"-.  \n" +
			" / -  - \\ \n" +
			"|   ..   |\n" +
			" \\ /--\\ / \n" +
			"  '-..-'  ",
		"  .-\"\"-.  \n" +
			" / ;  ; \\ \n" +
			"|   ..   |\n" +
			" \\ /--\\ / \n" +
			"  '-..-'  ",
	},
	"thinking": {
		"  .-\"\"-.  \n" +
			" / o  o \\ \n" +
			"|   ??   |\n" +
			" \\ hmm. / \n" +
			"  '-..-'  ",
		"  .-\"\"-.  \n" +
			" / o  o \\ \n" +
			"|   ??   |\n" +
			" \\ hmm.. /\n" +
			"  '-..-'  ",
		"  .-\"\"-.  \n" +
			" / o  o \\ \n" +
			"|   ??   |\n" +
			" \\ hmm.../\n" +
			"  '-..-'  ",
	},
}
