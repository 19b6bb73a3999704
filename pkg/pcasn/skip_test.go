package pcasn

import (
	"testing"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
)

// remaining drains the source so tests can see where skipping stopped.
func remaining(p *parseContext) []string {
	var out []string
	for {
		line, ok := p.next()
		if !ok {
			return out
		}
		out = append(out, line)
	}
}

func newTestContext(strict bool, lines ...string) *parseContext {
	return &parseContext{
		src:    Lines(lines...),
		logger: log.NewNopLogger(),
		strict: strict,
	}
}

func TestSkipBlock(t *testing.T) {
	tests := []struct {
		name   string
		strict bool
		open   string
		lines  []string
		want   []string
	}{
		{
			name:  "flat block",
			open:  "count {",
			lines: []string{"heavy-atom 3,", "tautomers -1", "}", "after"},
			want:  []string{"after"},
		},
		{
			name:  "nested blocks",
			open:  "coords {",
			lines: []string{"{", "type {", "two-d", "},", "aid {", "1", "}", "}", "},", "after"},
			want:  []string{"after"},
		},
		{
			name:  "open and close on one line cancel out",
			open:  "props {",
			lines: []string{"urn { label \"x\" },", "}", "after"},
			want:  []string{"after"},
		},
		{
			name:  "two closers on one line count once",
			open:  "outer {",
			lines: []string{"{", "{", "} }", "}", "after", "}", "tail"},
			want:  []string{"tail"},
		},
		{
			name:  "two openers on one line count once",
			open:  "outer {",
			lines: []string{"{ {", "}", "}", "}", "after"},
			want:  []string{"}", "after"},
		},
		{
			name:  "single line block swallows the next closer",
			open:  "stereo { }",
			lines: []string{"bonds {", "}", "}", "after"},
			want:  []string{"after"},
		},
		{
			name:  "runs out of input",
			open:  "coords {",
			lines: []string{"{", "x"},
			want:  nil,
		},
		{
			name:   "strict counts every brace",
			strict: true,
			open:   "outer {",
			lines:  []string{"{ {", "}", "}", "}", "after"},
			want:   []string{"after"},
		},
		{
			name:   "strict closes on the opening line",
			strict: true,
			open:   "stereo { }",
			lines:  []string{"bonds {", "}"},
			want:   []string{"bonds {", "}"},
		},
		{
			name:   "strict nested closers on one line",
			strict: true,
			open:   "outer {",
			lines:  []string{"{", "{", "} }", "}", "after"},
			want:   []string{"after"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestContext(tt.strict, tt.lines...)
			p.skipBlock(tt.open)
			assert.Equal(t, tt.want, remaining(p))
		})
	}
}
