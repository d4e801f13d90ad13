// Package enumdesc describes the enum class a cec template is expanded for:
// its name, underlying type, start value, ordered keys and the comments that
// accompany them. Descriptions are loaded from YAML or JSON documents and
// validated before use.
package enumdesc
