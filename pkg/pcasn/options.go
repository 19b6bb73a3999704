package pcasn

import "github.com/go-kit/log"

// Option configures a Reader.
type Option func(*Reader)

// WithLogger sets the logger used for debug tracing of the decode.
func WithLogger(logger log.Logger) Option {
	return func(r *Reader) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithStructuralSplit reflows each input line with SplitStructural before
// decoding, so compact records with several tokens per line decode the
// same way as one-value-per-line records.
func WithStructuralSplit() Option {
	return func(r *Reader) { r.structural = true }
}

// WithStrictBraceCounting makes skipped blocks count every brace
// character, including those following the opening brace on the block's
// first line. By default a line counts at most once per brace kind.
func WithStrictBraceCounting() Option {
	return func(r *Reader) { r.strictBraces = true }
}

// WithMaxLineSize bounds the length of a physical input line. Longer
// lines fail the decode with a StreamError.
func WithMaxLineSize(n int) Option {
	return func(r *Reader) { r.maxLineSize = n }
}
