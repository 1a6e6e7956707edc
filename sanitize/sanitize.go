package sanitize

import (
	"github.com/saylorsolutions/etched/errs"
)

const (
	minPrintable = 0x20
	maxPrintable = 0x7E

	// NullPlaceholder names a token that was absent when reporting an error.
	NullPlaceholder = "<null>"
)

// Valid reports whether a single token is acceptable input.
// Tokens must be non-empty and contain only printable ASCII, or the tab, newline, and carriage return characters so values may span words.
func Valid(token string) bool {
	if len(token) == 0 {
		return false
	}
	for i := 0; i < len(token); i++ {
		c := token[i]
		if c < minPrintable && c != '\t' && c != '\n' && c != '\r' {
			return false
		}
		if c > maxPrintable {
			return false
		}
	}
	return true
}

// Sanitize checks tokens in order, and returns at most maxCount of them.
// The first invalid token stops processing with an [errs.InvalidArgument] naming the token.
func Sanitize(tokens []string, maxCount int) ([]string, error) {
	cleaned := make([]string, 0, min(len(tokens), max(maxCount, 0)))
	for i := 0; i < len(tokens) && len(cleaned) < maxCount; i++ {
		if !Valid(tokens[i]) {
			return nil, errs.Invalid(errs.ErrInvalidToken, "%q", tokens[i])
		}
		cleaned = append(cleaned, tokens[i])
	}
	return cleaned, nil
}

// SanitizePtrs is like [Sanitize], but accepts tokens that may be absent.
// An absent token is reported using [NullPlaceholder].
func SanitizePtrs(tokens []*string, maxCount int) ([]string, error) {
	cleaned := make([]string, 0, min(len(tokens), max(maxCount, 0)))
	for i := 0; i < len(tokens) && len(cleaned) < maxCount; i++ {
		if tokens[i] == nil {
			return nil, errs.Invalid(errs.ErrInvalidToken, "%s", NullPlaceholder)
		}
		if !Valid(*tokens[i]) {
			return nil, errs.Invalid(errs.ErrInvalidToken, "%q", *tokens[i])
		}
		cleaned = append(cleaned, *tokens[i])
	}
	return cleaned, nil
}
