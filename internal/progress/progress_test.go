package progress

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCells(t *testing.T) {
	tests := []struct {
		percent    int
		wantFilled int
	}{
		{0, 0},
		{3, 0},
		{4, 1},
		{50, 12},
		{96, 24},
		{99, 24},
		{100, 25},
		{150, 25},
		{-10, 0},
	}

	for _, tt := range tests {
		filled := Cells(tt.percent)
		assert.Equal(t, tt.wantFilled, filled, "percent=%d", tt.percent)

		bar := Bar(tt.percent)
		assert.Equal(t, tt.wantFilled, strings.Count(bar, FilledCell), "percent=%d", tt.percent)
		assert.Equal(t, Width-tt.wantFilled, strings.Count(bar, EmptyCell), "percent=%d", tt.percent)
	}
}

func TestFraction(t *testing.T) {
	assert.InDelta(t, 12.0/25.0, Fraction(50), 1e-9)
	assert.InDelta(t, 1.0, Fraction(100), 1e-9)
	assert.InDelta(t, 0.0, Fraction(0), 1e-9)
}

func TestNormalizer_Stage(t *testing.T) {
	n := NewNormalizer(DefaultTokens())

	tests := []struct {
		raw  string
		want Stage
	}{
		{"receiving", StageObjectReceive},
		{"Receiving objects", StageObjectReceive},
		{"接收对象中", StageObjectReceive},
		{"resolving", StageDeltaResolve},
		{"Resolving deltas", StageDeltaResolve},
		{"处理", StageDeltaResolve},
		{"处理 delta 中", StageDeltaResolve},
		{"Counting objects", StageOther},
		{"Compressing objects", StageOther},
		{"", StageOther},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, n.Stage(tt.raw))
		})
	}
}

func TestTokens_Merge(t *testing.T) {
	base := DefaultTokens()
	merged := base.Merge(Tokens{StageObjectReceive: {"Objekte empfangen"}})

	n := NewNormalizer(merged)
	assert.Equal(t, StageObjectReceive, n.Stage("Objekte empfangen"))
	assert.Len(t, base[StageObjectReceive], 3, "merge must not modify the receiver")
}

func TestParseLine(t *testing.T) {
	tests := []struct {
		line   string
		want   Event
		wantOK bool
	}{
		{"Receiving objects:  45% (123/273), 1.20 MiB | 2.00 MiB/s", Event{"Receiving objects", 45}, true},
		{"Resolving deltas: 100% (80/80), done.", Event{"Resolving deltas", 100}, true},
		{"remote: Counting objects:  10% (1/10)", Event{"Counting objects", 10}, true},
		{"接收对象中:  7% (1/14)", Event{"接收对象中", 7}, true},
		{"Cloning into 'myapp'...", Event{}, false},
		{"remote: Enumerating objects: 273, done.", Event{}, false},
		{"", Event{}, false},
	}

	for _, tt := range tests {
		got, ok := ParseLine(tt.line)
		assert.Equal(t, tt.wantOK, ok, tt.line)
		assert.Equal(t, tt.want, got, tt.line)
	}
}

func TestLineReporter_RecognizedStagesOnly(t *testing.T) {
	var buf bytes.Buffer
	r := NewLineReporter(&buf, nil)

	r.Observe(Event{Raw: "Counting objects", Percent: 40})
	assert.Empty(t, buf.String())
	assert.Empty(t, r.Last())

	r.Observe(Event{Raw: "Receiving objects", Percent: 50})
	last := ansi.Strip(r.Last())
	assert.Contains(t, last, strings.Repeat(FilledCell, 12)+strings.Repeat(EmptyCell, 13))
	assert.Contains(t, last, "50%")

	r.Observe(Event{Raw: "Resolving deltas", Percent: 100})
	assert.Contains(t, ansi.Strip(r.Last()), "100%")

	out := buf.String()
	assert.NotContains(t, out, "\n", "line reporter must rewrite in place")
	assert.Equal(t, 2, strings.Count(out, "\r"))
}

func TestLineReporter_Track(t *testing.T) {
	var buf bytes.Buffer
	r := NewLineReporter(&buf, nil)

	err := r.Track("Preparing to clone template...", func(observe Observer) error {
		observe(Event{Raw: "receiving", Percent: 4})
		return nil
	})
	require.NoError(t, err)
	assert.Contains(t, ansi.Strip(r.Last()), "Template cloned")
	assert.Equal(t, 1, strings.Count(buf.String(), "\n"))

	buf.Reset()

	boom := errors.New("boom")
	err = r.Track("Preparing to clone template...", func(Observer) error { return boom })
	require.ErrorIs(t, err, boom)
	assert.Contains(t, ansi.Strip(r.Last()), "Create failed")
}
