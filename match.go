package etched

import (
	"strings"
)

// bareName strips a leading "--" or "-" from an argument.
func bareName(arg string) string {
	if strings.HasPrefix(arg, "--") {
		return arg[2:]
	}
	return strings.TrimPrefix(arg, "-")
}

// matchesName compares a bare flag name to the option's spellings with their dashes removed.
// Either spelling may match regardless of how many dashes the argument used, so "-port" matches "--port".
func matchesName(opt Option, name string) bool {
	if short := opt.Short(); len(short) > 1 && short[0] == '-' && short[1] != '-' {
		if short[1:] == name {
			return true
		}
	}
	if long := opt.Long(); strings.HasPrefix(long, "--") {
		if long[2:] == name {
			return true
		}
	}
	return false
}

func isTerminal(opt Option) bool {
	return opt.Tag() == HelpTag || opt.Tag() == VersionTag
}

func isHelp(opt Option) bool {
	return opt.Tag() == HelpTag
}

// tokens walks arguments while allowing a look at the next one.
type tokens struct {
	data []string
	idx  int
}

func newTokens(data []string) *tokens {
	return &tokens{data: data, idx: -1}
}

// Next moves forward, and reports whether there is a token at the new position.
func (t *tokens) Next() bool {
	if t.idx < len(t.data) {
		t.idx++
	}
	return t.idx < len(t.data)
}

func (t *tokens) Value() string {
	if t.idx < 0 || t.idx >= len(t.data) {
		return ""
	}
	return t.data[t.idx]
}

// HasNext reports whether another token follows the current one.
func (t *tokens) HasNext() bool {
	return t.idx+1 < len(t.data)
}

func (t *tokens) Index() int {
	return t.idx
}
