package errs

import (
	"strings"
)

// Collector gathers every configuration problem found while validating declarations, so they can be reported together.
//
// A Collector's Result is a [ConfigurationError], which means both the kind and each collected condition can be identified with [errors.Is].
//
// Note that a Collector is not concurrency safe.
type Collector struct {
	errs    []error
	joinStr string
}

// CollectErrors creates a new Collector, optionally with a join string that differs from the default of "; ".
func CollectErrors(joinString ...string) *Collector {
	joinStr := "; "
	if len(joinString) > 0 {
		joinStr = joinString[0]
	}
	return &Collector{
		joinStr: joinStr,
	}
}

// Add adds a new, potentially nil error to the Collector.
// Nil errors will not be included.
// A [ConfigurationError] is unwrapped first so the final message doesn't repeat the kind prefix.
func (c *Collector) Add(err error) *Collector {
	if err == nil {
		return c
	}
	if cfg, ok := err.(*ConfigurationError); ok && cfg.wrapped != nil {
		err = cfg.wrapped
	}
	c.errs = append(c.errs, err)
	return c
}

// Len returns how many errors have been collected.
func (c *Collector) Len() int {
	return len(c.errs)
}

// Result will return nil if no errors have been added to the Collector.
// Otherwise, a [ConfigurationError] wrapping the Collector is returned.
func (c *Collector) Result() error {
	if len(c.errs) > 0 {
		return &ConfigurationError{wrapped: c}
	}
	return nil
}

// Error satisfies the error interface.
func (c *Collector) Error() string {
	var buf strings.Builder
	for i, err := range c.errs {
		if i > 0 {
			buf.WriteString(c.joinStr)
		}
		buf.WriteString(err.Error())
	}
	return buf.String()
}

// Unwrap allows using [errors.Is] and [errors.As] to identify any error in the Collector.
func (c *Collector) Unwrap() []error {
	return c.errs
}
