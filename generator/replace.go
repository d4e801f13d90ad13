package generator

import "strings"

// Replace substitutes every non-overlapping occurrence of
// from in source with to, scanning left to right. An empty
// source yields an empty result and an empty from leaves
// source unchanged. Inserted text is never rescanned.
func Replace(source, from, to string) string {
	if source == "" {
		return ""
	}

	if from == "" {
		return source
	}

	return strings.ReplaceAll(source, from, to)
}

// splice replaces buf[start:end] with text.
func splice(buf string, start, end int, text string) string {
	var sb strings.Builder

	sb.Grow(len(buf) - (end - start) + len(text))
	sb.WriteString(buf[:start])
	sb.WriteString(text)
	sb.WriteString(buf[end:])

	return sb.String()
}
