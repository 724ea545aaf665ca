package constants

import (
	"os"
	"strconv"
)

func GetPort() int {
	return getIntEnv("PORT", 8080)
}

func GetLogLevel() string {
	level := os.Getenv("LOG_LEVEL")
	if level != "" {
		return level
	}
	return "info"
}

// GetMidiIn is the name (or name fragment) of the live input port.
func GetMidiIn() string {
	return os.Getenv("MIDI_IN")
}

func GetMidiOut() string {
	return os.Getenv("MIDI_OUT")
}

func GetDebounceMillis() int {
	return getIntEnv("DEBOUNCE_MS", 30)
}

func getIntEnv(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

const OctaveSize = 12

const TriadSize = 3

// widest allowed distance between the lowest and highest voice (1.5 octaves)
const MaxVoicingSpan = 18

// C1 in MIDI numbering, used as the base for tonic lookups
const C1Midi = 24

// highest note number a midi message can carry
const MaxMidiNote = 127

const DefaultVelocity = 100

const DefaultBPM = 90
