package generator

import (
	"strings"
	"time"
)

// Clock supplies the timestamp written in the signature
// line.
type Clock interface {
	Timestamp() string
}

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func() string

// Timestamp calls fn.
func (fn ClockFunc) Timestamp() string {
	return fn()
}

// SystemClock reports the current local time in the
// asctime layout.
type SystemClock struct{}

// Timestamp implements Clock.
func (SystemClock) Timestamp() string {
	return time.Now().Format(time.ANSIC)
}

// trimLineBreaks drops trailing CR and LF characters.
func trimLineBreaks(str string) string {
	return strings.TrimRight(str, "\r\n")
}
