// Package progress turns git's progress stream into a single-line bar.
//
// The fetcher emits raw [Event] values carrying git's own stage label. A
// [Normalizer] maps that label to a closed [Stage] set through a token table,
// so new git locales or versions only need extra table entries.
package progress

import (
	"regexp"
	"strconv"
	"strings"
)

// Stage is the normalized transfer phase.
type Stage int

const (
	StageOther Stage = iota
	StageObjectReceive
	StageDeltaResolve
)

func (s Stage) String() string {
	switch s {
	case StageObjectReceive:
		return "receiving"
	case StageDeltaResolve:
		return "resolving"
	default:
		return "other"
	}
}

// Event is a single progress report from the fetcher.
type Event struct {
	// Raw is the stage label exactly as the fetcher printed it
	Raw     string
	Percent int
}

// Observer receives events synchronously on the fetcher's goroutine. It must
// return quickly.
type Observer func(Event)

// Tokens maps raw stage spellings to a stage. Matching is case-insensitive
// against either the full label or its first word.
type Tokens map[Stage][]string

// DefaultTokens returns the spellings git prints in English and Chinese
// locales.
func DefaultTokens() Tokens {
	return Tokens{
		StageObjectReceive: {"receiving", "receiving objects", "接收对象中"},
		StageDeltaResolve:  {"resolving", "resolving deltas", "处理", "处理 delta 中"},
	}
}

// Merge returns a copy of t with extra spellings appended.
func (t Tokens) Merge(extra Tokens) Tokens {
	out := make(Tokens, len(t))
	for stage, words := range t {
		out[stage] = append([]string(nil), words...)
	}

	for stage, words := range extra {
		out[stage] = append(out[stage], words...)
	}

	return out
}

// Normalizer classifies raw stage labels.
type Normalizer struct {
	lookup map[string]Stage
}

// NewNormalizer builds a normalizer from a token table.
func NewNormalizer(tokens Tokens) *Normalizer {
	n := &Normalizer{lookup: make(map[string]Stage)}

	for stage, words := range tokens {
		for _, w := range words {
			key := normalizeKey(w)
			if key != "" {
				n.lookup[key] = stage
			}
		}
	}

	return n
}

// Stage returns the stage for a raw label, StageOther when unknown.
func (n *Normalizer) Stage(raw string) Stage {
	key := normalizeKey(raw)
	if key == "" {
		return StageOther
	}

	if s, ok := n.lookup[key]; ok {
		return s
	}

	if first, _, found := strings.Cut(key, " "); found {
		if s, ok := n.lookup[first]; ok {
			return s
		}
	}

	return StageOther
}

func normalizeKey(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// progressLine matches "Receiving objects:  45% (123/273), 1.2 MiB | 2 MiB/s".
var progressLine = regexp.MustCompile(`^(.+?):\s+(\d{1,3})%`)

// ParseLine extracts an event from one line of git's progress output.
// Lines without a percentage, including git's "remote:" prefix chatter
// without one, report ok=false.
func ParseLine(line string) (Event, bool) {
	line = strings.TrimSpace(line)
	line = strings.TrimPrefix(line, "remote: ")

	m := progressLine.FindStringSubmatch(line)
	if m == nil {
		return Event{}, false
	}

	pct, err := strconv.Atoi(m[2])
	if err != nil {
		return Event{}, false
	}

	return Event{Raw: strings.TrimSpace(m[1]), Percent: pct}, true
}
