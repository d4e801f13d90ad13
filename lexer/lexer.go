package lexer

import "strings"

// Kind identifies one tag of the cec template grammar.
type Kind int

// Tag kinds. Block kinds come first; the scalar kinds follow in the order
// the generator substitutes them.
const (
	KeepComment Kind = iota
	KeyList
	KeyValueList
	Name
	FullName
	Type
	Min
	Max
	Size
	FirstKey
	LastKey
)

var markers = [...]string{
	KeepComment:  "{cec:enum:keepComment}",
	KeyList:      "{cec:enum:keyList}",
	KeyValueList: "{cec:enum:keyValueList}",
	Name:         "{cec:enum:name}",
	FullName:     "{cec:enum:fullName}",
	Type:         "{cec:enum:type}",
	Min:          "{cec:enum:min}",
	Max:          "{cec:enum:max}",
	Size:         "{cec:enum:size}",
	FirstKey:     "{cec:enum:firstKey}",
	LastKey:      "{cec:enum:lastKey}",
}

var names = [...]string{
	KeepComment:  "keepComment",
	KeyList:      "keyList",
	KeyValueList: "keyValueList",
	Name:         "name",
	FullName:     "fullName",
	Type:         "type",
	Min:          "min",
	Max:          "max",
	Size:         "size",
	FirstKey:     "firstKey",
	LastKey:      "lastKey",
}

// ScalarKinds lists the scalar tags in substitution order.
var ScalarKinds = []Kind{
	Name, FullName, Type, Min, Max, Size, FirstKey, LastKey,
}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	return k >= 0 && int(k) < len(markers)
}

// Marker returns the literal template text of the tag, or an
// empty string for an unknown kind.
func (k Kind) Marker() string {
	if !k.Valid() {
		return ""
	}

	return markers[k]
}

// String returns the tag name as used inside the marker.
func (k Kind) String() string {
	if !k.Valid() {
		return "unknown"
	}

	return names[k]
}

// Block reports whether the tag expands to a multi-line,
// indentation-aware block.
func (k Kind) Block() bool {
	return k == KeepComment || k == KeyList || k == KeyValueList
}

// Match describes one tag occurrence.
type Match struct {
	// Found is false when no further occurrence exists.
	Found bool

	// Span is the text to replace: the marker plus, for
	// block kinds, the spaces that indent it.
	Span string

	// Offset is the byte index of Span in the buffer.
	Offset int

	// Indent is the number of spaces captured in front of
	// the marker.
	Indent int
}

// End returns the byte index just past the span.
func (m Match) End() int {
	return m.Offset + len(m.Span)
}

// Find returns the first occurrence of kind in buf at or
// after byte offset from.
//
// For block kinds the spaces between the preceding line
// break (or the buffer start) and the marker belong to the
// span. When other text shares the line, or when the
// spaces reach back before from, the span is the marker
// alone and Indent is zero.
func Find(buf string, kind Kind, from int) Match {
	marker := kind.Marker()
	if marker == "" || from < 0 || from >= len(buf) {
		return Match{}
	}

	idx := strings.Index(buf[from:], marker)
	if idx < 0 {
		return Match{}
	}

	start := from + idx
	mt := Match{
		Found:  true,
		Span:   marker,
		Offset: start,
	}

	if !kind.Block() {
		return mt
	}

	indent := leadingSpaces(buf, start)
	if indent < 0 || start-indent < from {
		return mt
	}

	mt.Offset = start - indent
	mt.Indent = indent
	mt.Span = buf[mt.Offset : start+len(marker)]

	return mt
}

// leadingSpaces counts the spaces immediately before pos.
// It returns -1 unless those spaces start a line.
func leadingSpaces(buf string, pos int) int {
	ii := pos - 1
	for ii >= 0 && buf[ii] == ' ' {
		ii--
	}

	if ii >= 0 && buf[ii] != '\n' {
		return -1
	}

	return pos - 1 - ii
}

// Contains reports whether buf holds any recognized marker.
func Contains(buf string) bool {
	for _, mk := range markers {
		if strings.Contains(buf, mk) {
			return true
		}
	}

	return false
}
