package components

import (
	"strings"

	"github.com/hoshinoya/dogepet/internal/models"
	"github.com/hoshinoya/dogepet/ui/styles"
)

const credentialWidth = 44

// RenderBubble draws one popup. The input bubble shows the live keyboard
// buffer instead of the text the runtime attached to it.
func RenderBubble(b models.SceneBubble, mode models.UIMode, buffer string) string {
	w := b.Frame.Size.W
	switch b.Kind {
	case models.BubbleInput:
		text := "> " + buffer
		if mode == models.ModeInput {
			text += "█"
		}
		return styles.InputBubbleStyle(w).Render(text)
	case models.BubblePrice:
		return styles.PriceBubbleStyle(w).Render(b.Text)
	default:
		return styles.ChatBubbleStyle(w).Render(b.Text)
	}
}

// RenderCredentialPrompt draws the masked API key entry box.
func RenderCredentialPrompt(buffer string) string {
	masked := strings.Repeat("*", len(buffer))
	return styles.CredentialStyle(credentialWidth).
		Render("OpenAI API key: " + masked + "█")
}
