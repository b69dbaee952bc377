package jsonpp

import (
	"io"

	"pkt.systems/jsonpp/internal/ansi"
)

// Sink receives the ordered stream of emission events produced by the
// renderer and turns them into bytes on an output destination. Events must
// be written in call order; colorization correctness depends on the strict
// code/text/reset sequence, so implementations must not reorder or batch
// across events.
type Sink interface {
	// Cdata writes raw text verbatim: indentation, the colon-space
	// separator, structural newlines, and unescaped string content.
	Cdata(s string) error
	// Bracket writes a single structural character: [ ] { }.
	Bracket(b byte) error
	// Delimiter writes a single separator character: , or :.
	Delimiter(b byte) error
	// Value writes a rendered scalar token such as a number literal,
	// true, false, null, NaN, Infinity, or -Infinity.
	Value(token string) error
	// BeginString and EndString bracket a string's full rendering,
	// opening quote through closing quote.
	BeginString() error
	EndString() error
	// EscapeSequence writes an escape token that is part of a string's
	// contents, either a backslash pair or one or two \uXXXX units.
	EscapeSequence(token string) error
}

// PlainSink writes every event's text unchanged. BeginString and EndString
// are no-ops.
type PlainSink struct {
	w       io.Writer
	sw      io.StringWriter
	bw      io.ByteWriter
	byteBuf [1]byte
}

// NewPlainSink returns a PlainSink writing to w.
func NewPlainSink(w io.Writer) *PlainSink {
	s := &PlainSink{w: w}
	s.sw, _ = w.(io.StringWriter)
	s.bw, _ = w.(io.ByteWriter)
	return s
}

func (s *PlainSink) writeString(str string) error {
	if str == "" {
		return nil
	}
	var err error
	if s.sw != nil {
		_, err = s.sw.WriteString(str)
	} else {
		_, err = io.WriteString(s.w, str)
	}
	return err
}

func (s *PlainSink) writeByte(b byte) error {
	if s.bw != nil {
		return s.bw.WriteByte(b)
	}
	s.byteBuf[0] = b
	_, err := s.w.Write(s.byteBuf[:])
	return err
}

func (s *PlainSink) Cdata(str string) error            { return s.writeString(str) }
func (s *PlainSink) Bracket(b byte) error              { return s.writeByte(b) }
func (s *PlainSink) Delimiter(b byte) error            { return s.writeByte(b) }
func (s *PlainSink) Value(token string) error          { return s.writeString(token) }
func (s *PlainSink) BeginString() error                { return nil }
func (s *PlainSink) EndString() error                  { return nil }
func (s *PlainSink) EscapeSequence(token string) error { return s.writeString(token) }

// StyledSink wraps string and scalar events in ANSI color codes from a
// palette. Brackets, delimiters, and cdata pass through uncolored; only
// string bodies, escape sequences inside strings, and scalar tokens are
// styled.
type StyledSink struct {
	PlainSink
	pal ansi.Palette
}

// NewStyledSink returns a StyledSink writing to w with the given palette.
// Empty palette entries leave the corresponding token class unstyled.
func NewStyledSink(w io.Writer, pal ansi.Palette) *StyledSink {
	return &StyledSink{PlainSink: *NewPlainSink(w), pal: pal}
}

func (s *StyledSink) BeginString() error {
	return s.writeString(s.pal.String)
}

func (s *StyledSink) EndString() error {
	return s.writeString(s.pal.Reset)
}

func (s *StyledSink) EscapeSequence(token string) error {
	if err := s.writeString(s.pal.Escape); err != nil {
		return err
	}
	if err := s.writeString(token); err != nil {
		return err
	}
	return s.writeString(s.pal.String)
}

func (s *StyledSink) Value(token string) error {
	if err := s.writeString(s.pal.Value); err != nil {
		return err
	}
	if err := s.writeString(token); err != nil {
		return err
	}
	return s.writeString(s.pal.Reset)
}

// NewSink returns the Sink selected by the options: a StyledSink when
// opts.Color is set and the palette resolves to actual colors, otherwise a
// PlainSink. An unknown palette name is an error.
func NewSink(w io.Writer, opts *Options) (Sink, error) {
	if opts == nil {
		opts = DefaultOptions
	}
	pal, err := resolvePalette(opts.Palette, opts.Color)
	if err != nil {
		return nil, err
	}
	if pal == (ansi.Palette{}) {
		return NewPlainSink(w), nil
	}
	return NewStyledSink(w, pal), nil
}
