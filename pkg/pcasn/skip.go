package pcasn

import "strings"

// skipBlock consumes the lines of a block whose opening line has already
// been read, stopping after the line that closes it. Running out of input
// ends the skip without error.
//
// In the default mode each line contributes at most one opening and one
// closing brace, whatever their number on the line, and the rest of the
// opening line is not examined. Strict mode counts every brace, starting
// right after the first '{' of the opening line.
func (p *parseContext) skipBlock(open string) {
	if p.strict {
		p.skipBlockStrict(open)
		return
	}

	depth := 0
	for {
		line, ok := p.next()
		if !ok {
			return
		}
		if strings.Contains(line, "{") {
			depth++
		}
		if strings.Contains(line, "}") {
			if depth == 0 {
				return
			}
			depth--
		}
	}
}

func (p *parseContext) skipBlockStrict(open string) {
	depth := 0
	if i := strings.IndexByte(open, '{'); i >= 0 {
		if closeBraces(open[i+1:], &depth) {
			return
		}
	}
	for {
		line, ok := p.next()
		if !ok {
			return
		}
		if closeBraces(line, &depth) {
			return
		}
	}
}

// closeBraces walks s updating the nesting depth and reports whether a
// closing brace was found at depth zero.
func closeBraces(s string, depth *int) bool {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '{':
			*depth++
		case '}':
			if *depth == 0 {
				return true
			}
			*depth--
		}
	}
	return false
}
