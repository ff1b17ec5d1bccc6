package hexcmd

import "github.com/Pavel7004/goHidCmd/pkg/domain"

// IsHex reports whether s is a non-empty run of hex digits. Signs, base
// prefixes and digit separators are rejected; width is not limited.
func IsHex(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case '0' <= c && c <= '9':
		case 'a' <= c && c <= 'f':
		case 'A' <= c && c <= 'F':
		default:
			return false
		}
	}
	return true
}

func Validate(tokens domain.TokenList) error {
	var invalid domain.TokenList
	for _, t := range tokens {
		if !IsHex(t.Text) {
			invalid = append(invalid, t)
		}
	}

	if len(invalid) == 0 {
		return nil
	}

	return &ValidationError{
		Token:   invalid[0],
		Invalid: invalid,
	}
}
