package constants

import (
	"os"
	"strconv"
)

// editor defaults for a chord file that leaves them out
const (
	DefaultKey     = 0
	DefaultBpm     = 160
	DefaultBeats   = 2
	DefaultBgColor = "#ffffff"
	DefaultColor   = "#88ccee"
)

// MIDI export
const (
	TicksPerBeat = 128
	Velocity     = 79
)

func GetOutDir() string {
	path := os.Getenv("CHORDEX_OUT_DIR")
	if path != "" {
		return path
	}
	return "./out"
}

func GetAddr() string {
	addr := os.Getenv("CHORDEX_ADDR")
	if addr != "" {
		return addr
	}
	return ":8080"
}

// GetSentryDSN is empty when error reporting is off.
func GetSentryDSN() string {
	return os.Getenv("SENTRY_DSN")
}

func GetDefaultBpm() float64 {
	val := os.Getenv("CHORDEX_DEFAULT_BPM")
	if val == "" {
		return DefaultBpm
	}
	bpm, err := strconv.ParseFloat(val, 64)
	if err != nil || bpm <= 0 {
		panic("CHORDEX_DEFAULT_BPM must be a positive number, got: " + val)
	}
	return bpm
}

func GetDefaultKey() int {
	val := os.Getenv("CHORDEX_DEFAULT_KEY")
	if val == "" {
		return DefaultKey
	}
	key, err := strconv.Atoi(val)
	if err != nil {
		panic("CHORDEX_DEFAULT_KEY must be an integer, got: " + val)
	}
	return key
}
