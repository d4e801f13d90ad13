package enumdesc

import "strconv"

// Comment holds the comments kept from the enum source.
type Comment struct {
	// HeadComment replaces the keep-comment tag.
	HeadComment string `json:"headComment" yaml:"headComment"`

	// KeyComments align one to one with the keys.
	KeyComments []string `json:"keyComments" yaml:"keyComments"`
}

// EnumDescription is one enum class. Key i carries the
// value StartValue+i.
type EnumDescription struct {
	Name       string   `json:"name" yaml:"name" validate:"required"`
	FullName   string   `json:"fullName" yaml:"fullName"`
	Type       string   `json:"type" yaml:"type" validate:"required"`
	StartValue int64    `json:"startValue" yaml:"startValue"`
	Keys       []string `json:"keys" yaml:"keys" validate:"min=1,dive,required"`
	Comment    Comment  `json:"comment" yaml:"comment"`
}

// Size returns the number of keys.
func (ed *EnumDescription) Size() int {
	return len(ed.Keys)
}

// Min returns the value of the first key.
func (ed *EnumDescription) Min() int64 {
	return ed.StartValue
}

// Max returns the value of the last key. It is Min()-1 when
// there are no keys.
func (ed *EnumDescription) Max() int64 {
	return ed.StartValue + int64(len(ed.Keys)) - 1
}

// Value returns the value assigned to key i.
func (ed *EnumDescription) Value(i int) int64 {
	return ed.StartValue + int64(i)
}

// FirstKey returns the first key, or "" without keys.
func (ed *EnumDescription) FirstKey() string {
	if len(ed.Keys) == 0 {
		return ""
	}

	return ed.Keys[0]
}

// LastKey returns the last key, or "" without keys.
func (ed *EnumDescription) LastKey() string {
	if len(ed.Keys) == 0 {
		return ""
	}

	return ed.Keys[len(ed.Keys)-1]
}

// KeyCommentsAligned reports whether there is exactly one
// key comment per key.
func (ed *EnumDescription) KeyCommentsAligned() bool {
	nc := len(ed.Comment.KeyComments)

	return nc != 0 && nc == len(ed.Keys)
}

// FormatInt renders v in decimal.
func FormatInt(v int64) string {
	return strconv.FormatInt(v, 10)
}
