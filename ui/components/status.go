package components

import (
	"github.com/hoshinoya/dogepet/ui/styles"
)

func RenderStatus(status string, thinking bool, width int) string {
	if width <= 0 {
		width = 80
	}
	content := status
	if thinking {
		content = "thinking... | " + content
	}
	return styles.StatusStyle(width).Render(content)
}
