package generator

import (
	"strings"

	"github.com/byte4ever/cecgen/enumdesc"
	"github.com/byte4ever/cecgen/lexer"
)

// renderKeyList quotes every key on its own line, indented
// by indent spaces, separated by commas.
func renderKeyList(
	ed *enumdesc.EnumDescription,
	indent int,
) string {
	pad := strings.Repeat(" ", indent)

	var sb strings.Builder

	for i, key := range ed.Keys {
		if i > 0 {
			sb.WriteString(",\n")
		}

		sb.WriteString(pad)
		sb.WriteByte('"')
		sb.WriteString(key)
		sb.WriteByte('"')
	}

	return sb.String()
}

// renderKeyValueList declares one constant per key. With
// withComments set, each key comment follows its
// declaration; every comment but the last is preceded by a
// single space.
func renderKeyValueList(
	ed *enumdesc.EnumDescription,
	keyword string,
	withComments bool,
	indent int,
) string {
	pad := strings.Repeat(" ", indent)
	last := len(ed.Keys) - 1

	var sb strings.Builder

	for i, key := range ed.Keys {
		sb.WriteString(pad)
		sb.WriteString(keyword)
		sb.WriteByte(' ')
		sb.WriteString(ed.Type)
		sb.WriteByte(' ')
		sb.WriteString(key)
		sb.WriteString(" = ")
		sb.WriteString(enumdesc.FormatInt(ed.Value(i)))
		sb.WriteByte(';')

		if withComments {
			if i != last {
				sb.WriteByte(' ')
			}

			sb.WriteString(trimTrailingSpace(ed.Comment.KeyComments[i]))
		}

		if i != last {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}

// trimTrailingSpace drops trailing blanks, tabs, vertical
// tabs and line breaks.
func trimTrailingSpace(str string) string {
	return strings.TrimRight(str, " \t\r\n\v")
}

// scalarValue renders the replacement text of a scalar tag.
func scalarValue(ed *enumdesc.EnumDescription, kind lexer.Kind) string {
	switch kind {
	case lexer.Name:
		return ed.Name
	case lexer.FullName:
		return ed.FullName
	case lexer.Type:
		return ed.Type
	case lexer.Min:
		return enumdesc.FormatInt(ed.Min())
	case lexer.Max:
		return enumdesc.FormatInt(ed.Max())
	case lexer.Size:
		return enumdesc.FormatInt(int64(ed.Size()))
	case lexer.FirstKey:
		return ed.FirstKey()
	case lexer.LastKey:
		return ed.LastKey()
	default:
		return ""
	}
}
