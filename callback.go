package etched

import (
	"errors"
	"fmt"
)

// Callback declares a boolean option that runs fn each time it's matched.
// The option is set to true before fn is called, and it never consumes a value argument.
//
// If fn returns an error created with [Stop], then parsing ends with a terminal [Result].
// Any other error is returned from [Parser.Parse] as-is.
// Passing a nil function will panic.
func Callback(tag, short, long string, fn func() error) *Value[bool] {
	if fn == nil {
		panic("nil callback function")
	}
	opt := Bool(tag, short, long)
	opt.cb = fn
	return opt
}

// Help declares the terminal help option, described as "Show this help message" unless changed with [Value.Describe].
// When matched, parsing ends with a [Result] holding the rendered help text.
func Help(short, long string) *Value[bool] {
	return Bool(HelpTag, short, long).Describe("Show this help message")
}

// Version declares the terminal version option.
// When matched, parsing ends with a [Result] holding the version text.
func Version(text, short, long string) *Value[bool] {
	return Callback(VersionTag, short, long, func() error {
		return Stop(text)
	})
}

type stopSignal struct {
	text string
}

func (s *stopSignal) Error() string {
	return fmt.Sprintf("stop requested: %s", s.text)
}

// Stop is returned from a [Callback] function to end parsing.
// The text is delivered in the terminal [Result], and [Parser.Run] prints it before exiting with status 0.
func Stop(text string) error {
	return &stopSignal{text: text}
}

func asStop(err error) (*stopSignal, bool) {
	var sig *stopSignal
	if errors.As(err, &sig) {
		return sig, true
	}
	return nil, false
}
