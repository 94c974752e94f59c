package utils

import "strings"

// The company runs exactly two cash-holding terminals on the
// Tuxtla Gutiérrez <-> Yajalón corridor. Ocosingo is a pickup/drop
// waypoint on the road; money collected there is reconciled in
// Yajalón, never at a drawer of its own.
const (
	TerminalTuxtla  = "tuxtla"
	TerminalYajalon = "yajalon"

	LabelTuxtla   = "Tuxtla Gutiérrez"
	LabelYajalon  = "Yajalón"
	LabelOcosingo = "Ocosingo"
)

// Terminal identity is inferred from free-text route names; all
// attribution and labeling must go through MatchTerminal so the policy
// can later move to a typed terminal id without touching call sites.
//
// "yajal" matches both the accented and plain spellings found in data.
var terminalKeywords = []struct {
	keyword  string
	terminal string
}{
	{"tuxtla", TerminalTuxtla},
	{"yajal", TerminalYajalon},
}

// MatchTerminal returns the terminal key whose keyword appears in s
// (case-insensitive substring), or "" when neither terminal matches.
func MatchTerminal(s string) string {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "" {
		return ""
	}
	for _, k := range terminalKeywords {
		if strings.Contains(v, k.keyword) {
			return k.terminal
		}
	}
	return ""
}

// TerminalLabel maps a terminal key to its printable name.
func TerminalLabel(terminal string) string {
	switch terminal {
	case TerminalTuxtla:
		return LabelTuxtla
	case TerminalYajalon:
		return LabelYajalon
	default:
		return ""
	}
}
