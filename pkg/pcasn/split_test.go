package pcasn

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitStructural(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{
			name: "canonical opener",
			line: "    aid {",
			want: []string{"aid {"},
		},
		{
			name: "canonical value",
			line: "      12 ,",
			want: []string{"12 ,"},
		},
		{
			name: "last value keeps no comma",
			line: "      9",
			want: []string{"9"},
		},
		{
			name: "closer with separator",
			line: "    },",
			want: []string{"}"},
		},
		{
			name: "compact leaf block",
			line: "aid { 1, 2 },",
			want: []string{"aid {", "1,", "2", "}"},
		},
		{
			name: "compact nested blocks",
			line: "  atoms { aid { 1, 2 }, element { c, o } },",
			want: []string{"atoms {", "aid {", "1,", "2", "}", "element {", "c,", "o", "}", "}"},
		},
		{
			name: "quoted structure is text",
			line: `value sval "a {b}, c",`,
			want: []string{`value sval "a {b}, c",`},
		},
		{
			name: "doubled quote escape",
			line: `label "say ""hi"", {x}"`,
			want: []string{`label "say ""hi"", {x}"`},
		},
		{
			name: "unterminated string runs to end of line",
			line: `value sval "open, {`,
			want: []string{`value sval "open, {`},
		},
		{
			name: "blank",
			line: "   ",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SplitStructural(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStructuralSourceReflowsLines(t *testing.T) {
	src := NewStructuralSource(Lines("a { 1,", "", "2 } }"))

	var got []string
	for {
		line, ok := src.Next()
		if !ok {
			break
		}
		got = append(got, line)
	}
	require.NoError(t, src.Err())
	assert.Equal(t, []string{"a {", "1,", "2", "}", "}"}, got)
}

type failingSource struct {
	lines []string
	err   error
}

func (s *failingSource) Next() (string, bool) {
	if len(s.lines) == 0 {
		return "", false
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	return line, true
}

func (s *failingSource) Err() error {
	if len(s.lines) == 0 {
		return s.err
	}
	return nil
}

func TestStructuralSourcePropagatesErr(t *testing.T) {
	boom := errors.New("boom")
	src := NewStructuralSource(&failingSource{lines: []string{"x {"}, err: boom})

	line, ok := src.Next()
	require.True(t, ok)
	assert.Equal(t, "x {", line)

	_, ok = src.Next()
	assert.False(t, ok)
	assert.ErrorIs(t, src.Err(), boom)
}
