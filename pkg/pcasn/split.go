package pcasn

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// compactLexer tokenizes one physical line of ASN text. Quoted strings use
// doubled quotes as escapes and may be left open at end of line.
var compactLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "String", Pattern: `"(?:[^"]|"")*"?`},
	{Name: "LBrace", Pattern: `\{`},
	{Name: "RBrace", Pattern: `\}`},
	{Name: "Comma", Pattern: `,`},
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "Text", Pattern: `[^{},"\s]+`},
})

var (
	tokLBrace = compactLexer.Symbols()["LBrace"]
	tokRBrace = compactLexer.Symbols()["RBrace"]
	tokComma  = compactLexer.Symbols()["Comma"]
)

// SplitStructural breaks one physical line into logical lines so that
// every block opener, value and block closer sits on a line of its own:
// a logical line ends after '{' or ',', each '}' forms its own line, and
// the end of the physical line ends the current logical line. Logical
// lines are trimmed; blank ones and bare separating commas are dropped.
// Structural characters inside quoted strings are kept as text.
//
//	SplitStructural("aid { 1, 2 },") == ["aid {", "1,", "2", "}"]
func SplitStructural(line string) ([]string, error) {
	lex, err := compactLexer.LexString("", line)
	if err != nil {
		return nil, err
	}

	var (
		out []string
		cur strings.Builder
	)
	flush := func() {
		if s := strings.TrimSpace(cur.String()); s != "" {
			out = append(out, s)
		}
		cur.Reset()
	}

	for {
		tok, err := lex.Next()
		if err != nil {
			return nil, err
		}
		if tok.EOF() {
			break
		}
		switch tok.Type {
		case tokLBrace:
			cur.WriteString(tok.Value)
			flush()
		case tokComma:
			if strings.TrimSpace(cur.String()) == "" {
				cur.Reset()
				continue
			}
			cur.WriteString(tok.Value)
			flush()
		case tokRBrace:
			flush()
			out = append(out, tok.Value)
		default:
			cur.WriteString(tok.Value)
		}
	}
	flush()
	return out, nil
}

type structuralSource struct {
	src     LineSource
	pending []string
	err     error
}

// NewStructuralSource reflows every line of src with SplitStructural.
func NewStructuralSource(src LineSource) LineSource {
	return &structuralSource{src: src}
}

func (s *structuralSource) Next() (string, bool) {
	for len(s.pending) == 0 {
		if s.err != nil {
			return "", false
		}
		line, ok := s.src.Next()
		if !ok {
			return "", false
		}
		lines, err := SplitStructural(line)
		if err != nil {
			s.err = err
			return "", false
		}
		s.pending = lines
	}
	line := s.pending[0]
	s.pending = s.pending[1:]
	return line, true
}

func (s *structuralSource) Err() error {
	if s.err != nil {
		return s.err
	}
	return s.src.Err()
}
