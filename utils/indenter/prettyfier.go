package indenter

import (
	"fmt"
	"strings"
)

const unit = "  "

// indenter builds a string where nested items are placed on their own lines,
// one level deeper than the surrounding delimiters. Multi-line items are
// re-indented as a whole.
type indenter struct {
	buf strings.Builder
}

func Indenter() *indenter {
	return &indenter{}
}

func nest(str string) string {
	return unit + strings.ReplaceAll(str, "\n", "\n"+unit)
}

func (i *indenter) Start(str string) *indenter {
	i.buf.WriteString(str)
	return i
}

type stringableString string

func (s stringableString) String() string {
	return string(s)
}

func (i *indenter) NestStrings(strs ...string) *indenter {
	return i.NestStringsSep("", strs...)
}

func (i *indenter) NestStringsSep(sep string, strs ...string) *indenter {
	stringers := make([]fmt.Stringer, len(strs))
	for i, v := range strs {
		stringers[i] = stringableString(v)
	}
	return i.NestSep(sep, stringers...)
}

func (i *indenter) Nest(strs ...fmt.Stringer) *indenter {
	return i.NestSep("", strs...)
}

func (i *indenter) NestSep(sep string, strs ...fmt.Stringer) *indenter {
	thunks := make([]func() string, len(strs))
	for idx, str := range strs {
		thunks[idx] = str.String
	}
	return i.NestThunkedSep(sep, thunks...)
}

func (i *indenter) NestThunked(strs ...func() string) *indenter {
	return i.NestThunkedSep("", strs...)
}

// NestThunkedSep nests the results of the thunks separated by sep. A single
// item stays on the current line.
func (i *indenter) NestThunkedSep(sep string, strs ...func() string) *indenter {
	if len(strs) == 1 {
		i.buf.WriteString(strs[0]())
		return i
	}

	for idx, str := range strs {
		i.buf.WriteString("\n")
		i.buf.WriteString(nest(str()))
		if idx < len(strs)-1 {
			i.buf.WriteString(sep)
		}
	}
	if len(strs) > 0 {
		i.buf.WriteString("\n")
	}
	return i
}

func (i *indenter) End(str string) string {
	i.buf.WriteString(str)
	return i.buf.String()
}
