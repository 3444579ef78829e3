package scanner

import "go.uber.org/zap"

// Option configures a Tokenizer.
type Option func(*Tokenizer)

// WithComments makes the tokenizer return comment tokens instead of skipping
// them.
func WithComments(surface bool) Option {
	return func(t *Tokenizer) {
		t.comments = surface
	}
}

// WithEscapeDecoding makes the tokenizer decode escape sequences of quoted
// strings into the token value.
func WithEscapeDecoding(decode bool) Option {
	return func(t *Tokenizer) {
		t.decodeEscapes = decode
	}
}

// WithLogger sets the logger that fatal lexical errors are reported to.
func WithLogger(log *zap.Logger) Option {
	return func(t *Tokenizer) {
		if log != nil {
			t.log = log
		}
	}
}
