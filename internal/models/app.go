package models

// UIMode says what the keyboard currently controls.
type UIMode int

const (
	ModeNormal     UIMode = iota // keys ignored except quit
	ModeInput                    // typing into the chat input bubble
	ModeCredential               // typing the API key (masked)
)

// AppModel represents the UI state - only local UI concerns.
// Everything the pet itself knows arrives as a Scene from the runtime.
type AppModel struct {
	Scene        Scene  // last scene pushed by the runtime
	Mode         UIMode // what the keyboard is bound to
	Buffer       string // text being typed (input or credential)
	Width        int    // terminal width
	Height       int    // terminal height
	Dragging     bool   // left button held over the sprite
	DragMoved    bool   // at least one motion event since press
	LastX, LastY int    // pointer position at the previous mouse event
	PendingClick bool   // a single click waiting to see if it becomes a double
	Status       string
}
