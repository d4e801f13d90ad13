// Package stamper fills Bazel workspace status values into the version
// label written in the generated signature line. Status files hold one
// "KEY VALUE" pair per line; {KEY} placeholders in the label are replaced
// and unknown placeholders are kept verbatim.
package stamper
