package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hoshinoya/dogepet/internal/models"
	"github.com/hoshinoya/dogepet/ui/styles"
)

// RenderScene lays the last pushed scene out on the terminal: popups above
// the sprite, the price bubble beside it, the status line pinned to the
// bottom row. Horizontal placement follows each frame's origin; vertical
// placement follows the anchor's row.
func RenderScene(m *models.AppModel) string {
	scene := m.Scene

	if m.Mode == models.ModeCredential {
		return renderWithCredential(m)
	}

	var above, beside []models.SceneBubble
	for _, b := range scene.Bubbles {
		if b.Kind == models.BubblePrice {
			beside = append(beside, b)
		} else {
			above = append(above, b)
		}
	}

	var top strings.Builder
	for _, b := range above {
		block := indent(RenderBubble(b, m.Mode, m.Buffer), b.Frame.Origin.X)
		top.WriteString(block)
		top.WriteString("\n")
	}

	sprite := indent(styles.SpriteStyle().Render(scene.Sprite), scene.Anchor.Origin.X)
	row := sprite
	for _, b := range beside {
		gap := b.Frame.Origin.X - scene.Anchor.Right()
		if gap < 1 {
			gap = 1
		}
		row = lipgloss.JoinHorizontal(lipgloss.Center, row, strings.Repeat(" ", gap), RenderBubble(b, m.Mode, m.Buffer))
	}

	body := top.String() + row

	// pad so the sprite sits roughly at the anchor's row
	pad := scene.Anchor.Origin.Y
	if len(above) > 0 {
		pad -= lipgloss.Height(top.String())
	}
	if pad < 0 {
		pad = 0
	}
	body = strings.Repeat("\n", pad) + body

	return pinStatus(body, m, scene)
}

func renderWithCredential(m *models.AppModel) string {
	body := strings.Repeat("\n", 2) + indent(RenderCredentialPrompt(m.Buffer), 4)
	return pinStatus(body, m, m.Scene)
}

func pinStatus(body string, m *models.AppModel, scene models.Scene) string {
	if m.Height > 0 {
		fill := m.Height - lipgloss.Height(body) - 1
		if fill > 0 {
			body += strings.Repeat("\n", fill)
		}
	}
	return body + "\n" + RenderStatus(m.Status, scene.Thinking, m.Width)
}

func indent(block string, n int) string {
	if n <= 0 {
		return block
	}
	pad := strings.Repeat(" ", n)
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		lines[i] = pad + line
	}
	return strings.Join(lines, "\n")
}
