package shared

import "strings"

// Window returns at most height lines of content starting at offset, padded
// with empty lines so the result always fills height.
func Window(content []string, offset, height int) string {
	if height <= 0 {
		return ""
	}
	offset = ClampOffset(offset, len(content), height)

	end := min(offset+height, len(content))
	lines := make([]string, 0, height)
	lines = append(lines, content[offset:end]...)
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// ClampOffset keeps a scroll offset inside [0, total-height].
func ClampOffset(offset, total, height int) int {
	maxOffset := max(0, total-height)
	return max(0, min(offset, maxOffset))
}

// CenterContent renders content vertically centered in the available height.
func CenterContent(content string, height int) string {
	content = strings.TrimRight(content, "\n")

	var contentLines []string
	if content != "" {
		contentLines = strings.Split(content, "\n")
	}
	if len(contentLines) >= height {
		return content
	}

	topPad := (height - len(contentLines)) / 2
	lines := make([]string, topPad, height)
	lines = append(lines, contentLines...)
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
