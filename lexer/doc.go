// Package lexer locates cec template tags inside free-form text. Block tags
// (keep-comment, key list, key/value list) are reported together with the
// run of spaces that indents them on their own line, so callers can replace
// the whole line prefix and re-indent a multi-line rendering. Scalar tags are
// plain literal markers.
package lexer
