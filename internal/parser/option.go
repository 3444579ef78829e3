package parser

import "go.uber.org/zap"

// Option configures a Parser.
type Option func(*Parser)

// WithName sets the chunk name that is recorded on the ast.Program.
func WithName(name string) Option {
	return func(p *Parser) {
		p.name = name
	}
}

// WithEscapeDecoding makes string terms carry the decoded value of quoted
// strings.
func WithEscapeDecoding(decode bool) Option {
	return func(p *Parser) {
		p.decodeEscapes = decode
	}
}

// WithLogger sets the logger of the parser and its tokenizer.
func WithLogger(log *zap.Logger) Option {
	return func(p *Parser) {
		if log != nil {
			p.log = log
		}
	}
}
