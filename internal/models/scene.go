package models

// BubbleKind distinguishes the three overlay popup flavours.
type BubbleKind int

const (
	BubbleChat BubbleKind = iota
	BubblePrice
	BubbleInput
)

func (k BubbleKind) String() string {
	switch k {
	case BubbleChat:
		return "chat"
	case BubblePrice:
		return "price"
	case BubbleInput:
		return "input"
	}
	return "unknown"
}

// SceneBubble is a positioned popup ready for rendering.
type SceneBubble struct {
	ID    string
	Kind  BubbleKind
	Text  string
	Frame Frame
}

// Scene is the full render state pushed from the pet runtime to the UI.
// The UI never mutates it; it only draws what it is given.
type Scene struct {
	Anchor    Frame
	Sprite    string // current animation frame, multi-line art
	Bubbles   []SceneBubble
	InputOpen bool
	Thinking  bool
	Status    string
}
