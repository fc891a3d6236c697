package sfc

import "strings"

// WriteAnnotation renders notes as a leading comment block followed by a
// blank line. No notes, no block.
func WriteAnnotation(notes []string) string {
	if len(notes) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("<!--")
	for _, note := range notes {
		sb.WriteString("\n")
		sb.WriteString(note)
	}
	sb.WriteString("\n-->\n\n")
	return sb.String()
}
