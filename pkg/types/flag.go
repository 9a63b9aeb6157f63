package types

import "strings"

// Flag is the tri-state value of an explicit item override. The zero value
// is FlagUnset: an item with no entry in the configuration. FlagUnset is
// never the same thing as FlagOff.
type Flag int8

const (
	FlagUnset Flag = iota
	FlagOn
	FlagOff
)

// FlagFromBool converts an explicit boolean into a set flag.
func FlagFromBool(b bool) Flag {
	if b {
		return FlagOn
	}
	return FlagOff
}

// IsSet reports whether the flag carries an explicit value.
func (f Flag) IsSet() bool {
	return f == FlagOn || f == FlagOff
}

// Bool returns the explicit value. ok is false for FlagUnset.
func (f Flag) Bool() (value bool, ok bool) {
	switch f {
	case FlagOn:
		return true, true
	case FlagOff:
		return false, true
	default:
		return false, false
	}
}

func (f Flag) String() string {
	switch f {
	case FlagOn:
		return "on"
	case FlagOff:
		return "off"
	default:
		return "unset"
	}
}

// ParseFlag parses a user supplied state token.
func ParseFlag(token string) (Flag, bool) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "on", "enable", "enabled", "true", "yes", "y":
		return FlagOn, true
	case "off", "disable", "disabled", "false", "no", "n":
		return FlagOff, true
	case "reset", "unset", "default", "inherit":
		return FlagUnset, true
	}
	return FlagUnset, false
}
