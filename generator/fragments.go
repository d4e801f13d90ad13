package generator

import (
	"slices"

	"github.com/byte4ever/cecgen/lexer"
)

// fragment is the [start, end) byte range of text inserted
// by an earlier replacement.
type fragment struct {
	start int
	end   int
}

// fragments tracks inserted text so no stage matches tags
// inside it. Ranges are kept sorted and never overlap.
type fragments []fragment

// overlaps reports whether [start, end) touches inserted
// text.
func (fs fragments) overlaps(start, end int) bool {
	for _, fr := range fs {
		if fr.start < end && start < fr.end {
			return true
		}
	}

	return false
}

// spliced records that buf[start:end] became n bytes of new
// text. The replaced range never overlaps a fragment.
func (fs fragments) spliced(start, end, n int) fragments {
	delta := n - (end - start)

	for i := range fs {
		if fs[i].start >= end {
			fs[i].start += delta
			fs[i].end += delta
		}
	}

	if n == 0 {
		return fs
	}

	idx, _ := slices.BinarySearchFunc(
		fs, start,
		func(fr fragment, pos int) int { return fr.start - pos },
	)

	return slices.Insert(fs, idx, fragment{start: start, end: start + n})
}

// gaps returns the parts of buf outside every fragment.
func (fs fragments) gaps(buf string) []string {
	var (
		out []string
		pos int
	)

	for _, fr := range fs {
		if fr.start > pos {
			out = append(out, buf[pos:fr.start])
		}

		pos = fr.end
	}

	if pos < len(buf) {
		out = append(out, buf[pos:])
	}

	return out
}

// find returns the first occurrence of kind at or after
// from whose marker lies outside inserted text. When only
// the captured indentation reaches into inserted text, the
// match shrinks to the bare marker.
func (fs fragments) find(buf string, kind lexer.Kind, from int) lexer.Match {
	marker := kind.Marker()

	for {
		mt := lexer.Find(buf, kind, from)
		if !mt.Found {
			return mt
		}

		at := mt.End() - len(marker)

		if fs.overlaps(at, mt.End()) {
			from = at + 1

			continue
		}

		if at > mt.Offset && fs.overlaps(mt.Offset, at) {
			return lexer.Match{Found: true, Span: marker, Offset: at}
		}

		return mt
	}
}
