package jsonpp

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"
	"unicode"
)

// Options controls rendering behavior. An Options value is read-only for
// the duration of a render call; no state is shared across calls.
type Options struct {
	// Indent is the indentation unit repeated per nesting level.
	// Default one tab.
	Indent string
	// SortKeys emits object keys in ascending lexical order instead of
	// insertion order. Default false.
	SortKeys bool
	// EscapeSlash escapes forward slashes in strings as \/. Default false.
	EscapeSlash bool
	// Color enables ANSI colorized output. The CLI sets this from TTY
	// detection; library callers decide for themselves. Default false.
	Color bool
	// Palette names the color scheme used when Color is set. Empty means
	// "default"; "none" disables coloring. See PaletteNames.
	Palette string
	// Unwrap recursively decodes string values that contain JSON,
	// up to MaxUnwrapDepth levels. Default false.
	Unwrap bool
}

// DefaultOptions holds the fallback configuration: tab indentation, keys in
// insertion order, no slash escaping, no color.
var DefaultOptions = &Options{Indent: "\t", Palette: paletteDefaultName}

// UnsupportedValueError reports a Value outside the tagged union, including
// a nil Value. Trees produced by this package's decoder never trigger it.
type UnsupportedValueError struct {
	Value Value
}

func (e *UnsupportedValueError) Error() string {
	if e.Value == nil {
		return "jsonpp: cannot render nil value"
	}
	return fmt.Sprintf("jsonpp: cannot render value of type %T", e.Value)
}

// RenderSink emits v as indented text through the given sink, followed by a
// single trailing newline. The traversal is plain depth-first recursion;
// write errors and unsupported values propagate immediately with no
// partial-output suppression.
func RenderSink(sink Sink, v Value, opts *Options) error {
	if opts == nil {
		opts = DefaultOptions
	}
	r := renderer{
		sink:        sink,
		indent:      opts.Indent,
		sortKeys:    opts.SortKeys,
		escapeSlash: opts.EscapeSlash,
	}
	if err := r.render(v, ""); err != nil {
		return err
	}
	return sink.Cdata("\n")
}

// Render writes v pretty-printed to w without color.
func Render(w io.Writer, v Value, opts *Options) error {
	return RenderSink(NewPlainSink(w), v, opts)
}

// RenderString renders v to a string without color.
func RenderString(v Value, opts *Options) (string, error) {
	var buf bytes.Buffer
	if err := Render(&buf, v, opts); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// PrettyTo decodes JSON documents from r and writes each one pretty-printed
// to w. Multiple whitespace-separated documents are rendered in sequence.
// Color and palette selection follow opts.
func PrettyTo(w io.Writer, r io.Reader, opts *Options) error {
	if opts == nil {
		opts = DefaultOptions
	}
	sink, err := NewSink(w, opts)
	if err != nil {
		return err
	}
	dec := acquireDecoder(r)
	defer releaseDecoder(dec)
	for {
		v, err := dec.Decode()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if opts.Unwrap {
			v = Unwrap(v, MaxUnwrapDepth)
		}
		if err := RenderSink(sink, v, opts); err != nil {
			return err
		}
	}
}

// Pretty decodes the input and returns it pretty-printed.
func Pretty(in []byte, opts *Options) ([]byte, error) {
	var buf bytes.Buffer
	if err := PrettyTo(&buf, bytes.NewReader(in), opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type renderer struct {
	sink        Sink
	indent      string
	sortKeys    bool
	escapeSlash bool
}

func (r *renderer) render(v Value, indentation string) error {
	switch x := v.(type) {
	case Null:
		return r.sink.Value("null")
	case Bool:
		if x {
			return r.sink.Value("true")
		}
		return r.sink.Value("false")
	case Int:
		return r.sink.Value(strconv.FormatInt(int64(x), 10))
	case Float:
		return r.sink.Value(formatFloat(float64(x)))
	case String:
		return r.renderString(string(x))
	case Array:
		return r.renderArray(x, indentation)
	case *Object:
		return r.renderObject(x, indentation)
	default:
		return &UnsupportedValueError{Value: v}
	}
}

func (r *renderer) renderArray(arr Array, indentation string) error {
	if err := r.sink.Bracket('['); err != nil {
		return err
	}
	if len(arr) > 0 {
		inner := indentation + r.indent
		item := "\n" + inner
		if err := r.sink.Cdata(item); err != nil {
			return err
		}
		if err := r.render(arr[0], inner); err != nil {
			return err
		}
		for _, el := range arr[1:] {
			if err := r.sink.Delimiter(','); err != nil {
				return err
			}
			if err := r.sink.Cdata(item); err != nil {
				return err
			}
			if err := r.render(el, inner); err != nil {
				return err
			}
		}
		if err := r.sink.Cdata("\n" + indentation); err != nil {
			return err
		}
	}
	return r.sink.Bracket(']')
}

func (r *renderer) renderObject(obj *Object, indentation string) error {
	if err := r.sink.Bracket('{'); err != nil {
		return err
	}
	if obj.Len() > 0 {
		inner := indentation + r.indent
		item := "\n" + inner
		keys := obj.Keys()
		if r.sortKeys {
			sort.Strings(keys)
		}
		if err := r.sink.Cdata(item); err != nil {
			return err
		}
		if err := r.renderEntry(obj, keys[0], inner); err != nil {
			return err
		}
		for _, key := range keys[1:] {
			if err := r.sink.Delimiter(','); err != nil {
				return err
			}
			if err := r.sink.Cdata(item); err != nil {
				return err
			}
			if err := r.renderEntry(obj, key, inner); err != nil {
				return err
			}
		}
		if err := r.sink.Cdata("\n" + indentation); err != nil {
			return err
		}
	}
	return r.sink.Bracket('}')
}

func (r *renderer) renderEntry(obj *Object, key, inner string) error {
	if err := r.renderString(key); err != nil {
		return err
	}
	if err := r.sink.Delimiter(':'); err != nil {
		return err
	}
	if err := r.sink.Cdata(" "); err != nil {
		return err
	}
	v, _ := obj.Get(key)
	return r.render(v, inner)
}

func (r *renderer) renderString(s string) error {
	if err := r.sink.BeginString(); err != nil {
		return err
	}
	if err := r.sink.Cdata(`"`); err != nil {
		return err
	}
	for _, c := range s {
		if tok, ok := escapeToken(c, r.escapeSlash); ok {
			if err := r.sink.EscapeSequence(tok); err != nil {
				return err
			}
			continue
		}
		if c > 127 || !unicode.IsPrint(c) {
			if err := r.sink.EscapeSequence(unicodeEscape(c)); err != nil {
				return err
			}
			continue
		}
		if err := r.sink.Cdata(string(c)); err != nil {
			return err
		}
	}
	if err := r.sink.Cdata(`"`); err != nil {
		return err
	}
	return r.sink.EndString()
}

func escapeToken(c rune, escapeSlash bool) (string, bool) {
	switch c {
	case '"':
		return `\"`, true
	case '\\':
		return `\\`, true
	case '/':
		if escapeSlash {
			return `\/`, true
		}
		return "", false
	case '\b':
		return `\b`, true
	case '\f':
		return `\f`, true
	case '\n':
		return `\n`, true
	case '\r':
		return `\r`, true
	case '\t':
		return `\t`, true
	default:
		return "", false
	}
}

// unicodeEscape renders c as \uXXXX with uppercase hex. Code points above
// the BMP become a UTF-16 surrogate pair emitted as one token, never a raw
// 5+ digit escape.
func unicodeEscape(c rune) string {
	if c <= 0xFFFF {
		return escapeHex4(c)
	}
	cp := c - 0x10000
	high := cp>>10 + 0xD800
	low := cp%0x400 + 0xDC00
	return escapeHex4(high) + escapeHex4(low)
}

const hexUpper = "0123456789ABCDEF"

func escapeHex4(u rune) string {
	b := [6]byte{
		'\\', 'u',
		hexUpper[u>>12&0xF],
		hexUpper[u>>8&0xF],
		hexUpper[u>>4&0xF],
		hexUpper[u&0xF],
	}
	return string(b[:])
}

// formatFloat produces the shortest round-trippable decimal form. A whole
// value keeps a trailing .0 so Float never collides with Int, and the
// non-finite values use the bare NaN/Infinity extension tokens.
func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
