package etched

// MustGet is used with [Get] to panic if the option isn't declared, or isn't the right type.
// The developer usually knows whether a get call will fail, so this function makes retrieval read more naturally.
func MustGet[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
