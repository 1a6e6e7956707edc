package env

import (
	"log/slog"
	"os"
	"strings"
)

func getEnv() map[string]string {
	envMap := map[string]string{}
	environ := os.Environ()
	for i := 0; i < len(environ); i++ {
		key, val, found := strings.Cut(environ[i], "=")
		if !found {
			continue
		}
		envMap[strings.ToLower(key)] = val
	}
	return envMap
}

// Lookup finds the trimmed value of an environment variable.
// An exact match of the key is preferred, otherwise keys are compared case-insensitive.
// A variable that is set, but empty after trimming, is reported as not found.
func Lookup(key string) (string, bool) {
	if val, ok := os.LookupEnv(key); ok {
		trimmed := strings.TrimSpace(val)
		return trimmed, len(trimmed) > 0
	}
	val, ok := getEnv()[strings.ToLower(key)]
	if !ok {
		return "", false
	}
	trimmed := strings.TrimSpace(val)
	return trimmed, len(trimmed) > 0
}

// Val will attempt to get an environment variable value using the given key.
// If the variable isn't set, or is empty, then the defaultVal will be returned.
func Val(key string, defaultVal string) string {
	if val, ok := Lookup(key); ok {
		return val
	}
	return defaultVal
}

var (
	DefaultTrue  = []string{"1", "yes", "true", "on"}  // DefaultTrue are the values considered "true" when using [Bool], and can be changed.
	DefaultFalse = []string{"0", "no", "false", "off"} // DefaultFalse are the values considered "false" when using [Bool], and can be changed.
)

// Bool interprets an environment variable as a boolean, using [DefaultTrue] and [DefaultFalse].
// The defaultVal will be returned if the variable isn't set, is empty, or can't be a boolean value.
func Bool(key string, defaultVal bool) bool {
	sval := strings.ToLower(Val(key, ""))
	if len(sval) == 0 {
		return defaultVal
	}
	for _, v := range DefaultTrue {
		if sval == v {
			return true
		}
	}
	for _, v := range DefaultFalse {
		if sval == v {
			return false
		}
	}
	return defaultVal
}

// Level interprets an environment variable as a [slog.Level] name (debug, info, warn, or error).
// The defaultVal will be returned if the variable isn't set or isn't a known level.
func Level(key string, defaultVal slog.Level) slog.Level {
	switch strings.ToLower(Val(key, "")) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return defaultVal
	}
}
