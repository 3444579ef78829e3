package luafront

import (
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

type Option func(*Frontend)

// WithFs sets the file system that ParseFile and TokenizeFile read from.
func WithFs(fs afero.Fs) Option {
	return func(f *Frontend) {
		f.fs = fs
	}
}

func WithLogger(log *zap.Logger) Option {
	return func(f *Frontend) {
		if log != nil {
			f.log = log
		}
	}
}

// WithName overrides the name of parsed programs.
func WithName(name string) Option {
	return func(f *Frontend) {
		f.name = name
	}
}

// WithComments makes Tokenize include comment tokens. The parser never sees
// comments.
func WithComments(comments bool) Option {
	return func(f *Frontend) {
		f.comments = comments
	}
}

// WithEscapeDecoding decodes escape sequences of quoted strings. Without it,
// the value of a string is its text between the quotes.
func WithEscapeDecoding(decode bool) Option {
	return func(f *Frontend) {
		f.decodeEscapes = decode
	}
}
