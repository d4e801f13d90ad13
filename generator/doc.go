// Package generator expands a cec template into the source text of one
// enum class. A Generator runs a fixed pipeline over the template: it
// prepends a signature line, expands keep-comment, key-list and
// key/value-list blocks, then substitutes the scalar tags (name, full name,
// type, min, max, size, first and last key).
//
// Generation never fails. Anomalies such as a key comment count that does
// not match the key count, or an empty result, are reported through the
// Diagnostics collaborator and the best-effort text is returned.
package generator
