package domain

import "strings"

type Token struct {
	Text   string
	Line   uint
	Column uint
}

type TokenList []Token

func (l TokenList) Texts() []string {
	texts := make([]string, len(l))
	for i, t := range l {
		texts[i] = t.Text
	}
	return texts
}

// Join concatenates token texts with sep, keeping the original order.
func (l TokenList) Join(sep string) string {
	return strings.Join(l.Texts(), sep)
}
