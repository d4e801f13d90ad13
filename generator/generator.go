package generator

import (
	"fmt"

	"github.com/byte4ever/cecgen/enumdesc"
	"github.com/byte4ever/cecgen/lexer"
)

// Generator expands cec templates. The zero value uses
// DefaultConfig, the system clock and discards
// diagnostics. A Generator holds no per-call state and may
// be shared between goroutines when its Clock and
// Diagnostics are safe for concurrent use.
type Generator struct {
	Config      Config
	Clock       Clock
	Diagnostics Diagnostics
}

// New returns a Generator for cfg reporting to diag.
func New(cfg Config, diag Diagnostics) *Generator {
	return &Generator{
		Config:      DefaultConfig().Merge(cfg),
		Diagnostics: diag,
	}
}

// Generate expands template for ed. An empty template
// selects the configured default template.
//
// Processing order:
//  1. Prepend the signature line.
//  2. Replace every keep-comment tag with the head
//     comment. Finding one enables key comments.
//  3. Expand every key-list tag.
//  4. Expand every key/value-list tag.
//  5. Substitute the scalar tags, in lexer.ScalarKinds
//     order.
//
// Text inserted by any step is never scanned for tags
// again, by that step or a later one.
//
// Generate never fails; an empty result is reported as an
// error diagnostic and returned as is.
func (gen *Generator) Generate(
	ed *enumdesc.EnumDescription,
	template string,
) string {
	if ed == nil {
		ed = &enumdesc.EnumDescription{}
	}

	ex := &expansion{
		ed:      ed,
		keyword: gen.keyword(),
		diag:    gen.diagnostics(),
	}

	if template == "" {
		template = gen.defaultTemplate()
	}

	sig := gen.Signature()

	ex.buf = sig + "\n" + template
	ex.inserted = fragments{{start: 0, end: len(sig)}}

	ex.expandKeepComments()
	ex.expandKeyLists()
	ex.expandKeyValueLists()
	ex.substituteScalars()
	ex.checkResidualTags()

	if ex.buf == "" {
		ex.diag.Error(fmt.Sprintf(
			"generating enum %q failed: empty result", ed.Name,
		))
	}

	return ex.buf
}

// Signature returns the comment line identifying the tool
// and the generation time, without a line break.
func (gen *Generator) Signature() string {
	clock := gen.Clock
	if clock == nil {
		clock = SystemClock{}
	}

	label := gen.Config.VersionLabel
	if label == "" {
		label = DefaultVersionLabel
	}

	return "// Generated by <" + label + "> -- " +
		trimLineBreaks(clock.Timestamp())
}

func (gen *Generator) keyword() string {
	if gen.Config.DataTypeKeyword == "" {
		return DefaultDataTypeKeyword
	}

	return gen.Config.DataTypeKeyword
}

func (gen *Generator) defaultTemplate() string {
	if gen.Config.DefaultTemplate == "" {
		return DefaultTemplate
	}

	return gen.Config.DefaultTemplate
}

func (gen *Generator) diagnostics() Diagnostics {
	if gen.Diagnostics == nil {
		return discardDiagnostics{}
	}

	return gen.Diagnostics
}

// expansion is the state of one Generate call.
type expansion struct {
	ed      *enumdesc.EnumDescription
	keyword string
	diag    Diagnostics
	buf     string

	// inserted covers every rendered fragment in buf.
	inserted fragments

	// keepComment is set once a keep-comment tag was seen.
	keepComment bool

	// commentsDecided guards the one-time key comment
	// check of the key/value stage.
	commentsDecided bool
	withComments    bool
}

// expandTags replaces every occurrence of kind, left to
// right, with the text render returns for its indent.
// Rendered text is recorded as inserted, so neither this
// nor any later stage matches tags inside it.
func (ex *expansion) expandTags(
	kind lexer.Kind,
	render func(indent int) string,
) int {
	count := 0

	for pos := 0; ; count++ {
		mt := ex.inserted.find(ex.buf, kind, pos)
		if !mt.Found {
			return count
		}

		text := render(mt.Indent)
		ex.buf = splice(ex.buf, mt.Offset, mt.End(), text)
		ex.inserted = ex.inserted.spliced(mt.Offset, mt.End(), len(text))
		pos = mt.Offset + len(text)
	}
}

func (ex *expansion) expandKeepComments() {
	n := ex.expandTags(lexer.KeepComment, func(int) string {
		return ex.ed.Comment.HeadComment
	})

	ex.keepComment = n > 0
}

func (ex *expansion) expandKeyLists() {
	ex.expandTags(lexer.KeyList, func(indent int) string {
		return renderKeyList(ex.ed, indent)
	})
}

func (ex *expansion) expandKeyValueLists() {
	ex.expandTags(lexer.KeyValueList, func(indent int) string {
		return renderKeyValueList(
			ex.ed, ex.keyword, ex.commentsEnabled(), indent,
		)
	})
}

// commentsEnabled decides once per call whether key
// comments are rendered. A count mismatch drops them for
// the whole call.
func (ex *expansion) commentsEnabled() bool {
	if ex.commentsDecided {
		return ex.withComments
	}

	ex.commentsDecided = true
	ex.withComments = ex.keepComment

	if ex.withComments && !ex.ed.KeyCommentsAligned() {
		ex.withComments = false
		ex.diag.Info(fmt.Sprintf(
			"enum %q: %d key comments for %d keys, key comments are not generated",
			ex.ed.Name, len(ex.ed.Comment.KeyComments), len(ex.ed.Keys),
		))
	}

	return ex.withComments
}

func (ex *expansion) substituteScalars() {
	for _, kind := range lexer.ScalarKinds {
		value := scalarValue(ex.ed, kind)

		ex.expandTags(kind, func(int) string {
			return value
		})
	}
}

// checkResidualTags reports markers left in template text,
// which happens when removing a tag joins the text around
// it into a new marker.
func (ex *expansion) checkResidualTags() {
	for _, gap := range ex.inserted.gaps(ex.buf) {
		if lexer.Contains(gap) {
			ex.diag.Info(fmt.Sprintf(
				"enum %q: template text still holds an unexpanded tag",
				ex.ed.Name,
			))

			return
		}
	}
}
