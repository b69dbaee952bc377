package jsonpp

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"
	"unicode/utf16"
	"unicode/utf8"
)

// maxDecodeDepth bounds container nesting so adversarial input cannot blow
// the stack. Well-formed documents stay far below it.
const maxDecodeDepth = 10000

// Decoder reads a stream of whitespace-separated JSON documents and
// materializes each one as a Value tree with object key order preserved.
// Beyond strict JSON it accepts the NaN, Infinity, and -Infinity literals
// that the renderer emits for non-finite floats.
type Decoder struct {
	scanner scanner
	scratch []byte
}

// NewDecoder returns a Decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	d := &Decoder{}
	d.scanner.Reset(r)
	return d
}

// Decode reads the next document from the stream. It returns io.EOF once
// only trailing whitespace remains.
func (d *Decoder) Decode() (Value, error) {
	if err := d.scanner.skipSpace(); err != nil {
		return nil, err
	}
	return d.decodeValue(0)
}

// Parse decodes a single JSON document from in. Anything but whitespace
// after the document is an error.
func Parse(in []byte) (Value, error) {
	d := acquireDecoder(bytes.NewReader(in))
	defer releaseDecoder(d)
	v, err := d.Decode()
	if err != nil {
		return nil, err
	}
	if err := d.scanner.skipSpace(); err != io.EOF {
		return nil, fmt.Errorf("json: trailing data after document")
	}
	return v, nil
}

// ParseReader decodes a single JSON document from r, ignoring anything that
// follows it.
func ParseReader(r io.Reader) (Value, error) {
	d := acquireDecoder(r)
	defer releaseDecoder(d)
	return d.Decode()
}

func (d *Decoder) decodeValue(depth int) (Value, error) {
	b, err := d.scanner.readNonSpace()
	if err != nil {
		return nil, err
	}
	return d.decodeValueWithFirst(depth, b)
}

func (d *Decoder) decodeValueWithFirst(depth int, first byte) (Value, error) {
	if depth > maxDecodeDepth {
		return nil, fmt.Errorf("json: exceeded maximum nesting depth")
	}
	switch first {
	case '{':
		return d.decodeObject(depth)
	case '[':
		return d.decodeArray(depth)
	case '"':
		s, err := d.decodeString()
		if err != nil {
			return nil, err
		}
		return String(s), nil
	case 't':
		if err := d.literal("true"); err != nil {
			return nil, err
		}
		return Bool(true), nil
	case 'f':
		if err := d.literal("false"); err != nil {
			return nil, err
		}
		return Bool(false), nil
	case 'n':
		if err := d.literal("null"); err != nil {
			return nil, err
		}
		return Null{}, nil
	case 'N':
		if err := d.literal("NaN"); err != nil {
			return nil, err
		}
		return Float(math.NaN()), nil
	case 'I':
		if err := d.literal("Infinity"); err != nil {
			return nil, err
		}
		return Float(math.Inf(1)), nil
	case '-':
		next, err := d.scanner.peekByte()
		if err == nil && next == 'I' {
			_, _ = d.scanner.readByte()
			if err := d.literal("Infinity"); err != nil {
				return nil, err
			}
			return Float(math.Inf(-1)), nil
		}
		return d.decodeNumber(first)
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return d.decodeNumber(first)
	default:
		return nil, fmt.Errorf("json: unexpected character %q", first)
	}
}

func (d *Decoder) decodeObject(depth int) (Value, error) {
	obj := NewObject()

	b, err := d.scanner.readNonSpace()
	if err != nil {
		return nil, err
	}
	if b == '}' {
		return obj, nil
	}

	for {
		if b != '"' {
			return nil, fmt.Errorf("json: expected object key")
		}
		key, err := d.decodeString()
		if err != nil {
			return nil, err
		}
		b, err = d.scanner.readNonSpace()
		if err != nil {
			return nil, err
		}
		if b != ':' {
			return nil, fmt.Errorf("json: expected ':' after object key")
		}
		val, err := d.decodeValue(depth + 1)
		if err != nil {
			return nil, err
		}
		obj.Set(key, val)

		b, err = d.scanner.readNonSpace()
		if err != nil {
			return nil, err
		}
		switch b {
		case ',':
			b, err = d.scanner.readNonSpace()
			if err != nil {
				return nil, err
			}
			continue
		case '}':
			return obj, nil
		default:
			return nil, fmt.Errorf("json: expected ',' or '}'")
		}
	}
}

func (d *Decoder) decodeArray(depth int) (Value, error) {
	arr := Array{}

	b, err := d.scanner.readNonSpace()
	if err != nil {
		return nil, err
	}
	if b == ']' {
		return arr, nil
	}

	for {
		el, err := d.decodeValueWithFirst(depth+1, b)
		if err != nil {
			return nil, err
		}
		arr = append(arr, el)

		b, err = d.scanner.readNonSpace()
		if err != nil {
			return nil, err
		}
		switch b {
		case ',':
			b, err = d.scanner.readNonSpace()
			if err != nil {
				return nil, err
			}
			continue
		case ']':
			return arr, nil
		default:
			return nil, fmt.Errorf("json: expected ',' or ']'")
		}
	}
}

// decodeString consumes a string body after the opening quote, resolving
// all escapes.
func (d *Decoder) decodeString() (string, error) {
	d.scratch = d.scratch[:0]
	for {
		b, err := d.scanner.readByte()
		if err != nil {
			return "", err
		}
		if b == '"' {
			return string(d.scratch), nil
		}
		if b < 0x20 {
			return "", fmt.Errorf("json: invalid control character in string")
		}
		if b != '\\' {
			d.scratch = append(d.scratch, b)
			continue
		}
		esc, err := d.scanner.readByte()
		if err != nil {
			return "", err
		}
		switch esc {
		case '"', '\\', '/':
			d.scratch = append(d.scratch, esc)
		case 'b':
			d.scratch = append(d.scratch, '\b')
		case 'f':
			d.scratch = append(d.scratch, '\f')
		case 'n':
			d.scratch = append(d.scratch, '\n')
		case 'r':
			d.scratch = append(d.scratch, '\r')
		case 't':
			d.scratch = append(d.scratch, '\t')
		case 'u':
			r, err := d.readUnicodeEscape()
			if err != nil {
				return "", err
			}
			d.scratch = utf8.AppendRune(d.scratch, r)
		default:
			return "", fmt.Errorf("json: invalid escape sequence")
		}
	}
}

func (d *Decoder) readUnicodeEscape() (rune, error) {
	n1, err := d.readHex4()
	if err != nil {
		return 0, err
	}
	if n1 < 0xD800 || n1 > 0xDBFF {
		return n1, nil
	}
	b, err := d.scanner.readByte()
	if err != nil {
		return 0, err
	}
	if b != '\\' {
		return utf8.RuneError, fmt.Errorf("json: invalid surrogate pair")
	}
	b, err = d.scanner.readByte()
	if err != nil {
		return 0, err
	}
	if b != 'u' {
		return utf8.RuneError, fmt.Errorf("json: invalid surrogate pair")
	}
	n2, err := d.readHex4()
	if err != nil {
		return 0, err
	}
	if n2 < 0xDC00 || n2 > 0xDFFF {
		return utf8.RuneError, fmt.Errorf("json: invalid surrogate pair")
	}
	return utf16.DecodeRune(n1, n2), nil
}

func (d *Decoder) readHex4() (rune, error) {
	var val rune
	for i := 0; i < 4; i++ {
		b, err := d.scanner.readByte()
		if err != nil {
			return 0, err
		}
		if !isHex(b) {
			return 0, fmt.Errorf("json: invalid unicode escape")
		}
		val = val<<4 | rune(fromHex(b))
	}
	return val, nil
}

func (d *Decoder) literal(lit string) error {
	for i := 1; i < len(lit); i++ {
		b, err := d.scanner.readByte()
		if err != nil {
			return err
		}
		if b != lit[i] {
			return fmt.Errorf("json: invalid literal")
		}
	}
	return nil
}

// decodeNumber validates the token with a state machine while accumulating
// it, then parses it as Int when it has no fraction or exponent and as
// Float otherwise. Integer tokens beyond the int64 range fall back to
// Float.
func (d *Decoder) decodeNumber(first byte) (Value, error) {
	state, ok := numStartState(first)
	if !ok {
		return nil, fmt.Errorf("json: invalid number")
	}
	d.scratch = append(d.scratch[:0], first)
	isFloat := false
	for {
		b, err := d.scanner.peekByte()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}
		if isTerminator(b) {
			break
		}
		next, ok := numNextState(state, b)
		if !ok {
			return nil, fmt.Errorf("json: invalid number")
		}
		state = next
		if b == '.' || b == 'e' || b == 'E' {
			isFloat = true
		}
		_, _ = d.scanner.readByte()
		d.scratch = append(d.scratch, b)
	}
	if !numIsTerminal(state) {
		return nil, fmt.Errorf("json: invalid number")
	}
	token := string(d.scratch)
	if !isFloat {
		n, err := strconv.ParseInt(token, 10, 64)
		if err == nil {
			return Int(n), nil
		}
	}
	f, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return nil, fmt.Errorf("json: invalid number %q", token)
	}
	return Float(f), nil
}

// scanner is a minimal buffered byte reader for the decoder and the
// compact framing reader.
type scanner struct {
	r   io.Reader
	buf [4096]byte
	pos int
	n   int
}

func (s *scanner) Reset(r io.Reader) {
	s.r = r
	s.pos = 0
	s.n = 0
}

func (s *scanner) fill() error {
	n, err := s.r.Read(s.buf[:])
	if n == 0 {
		if err == nil {
			return io.EOF
		}
		return err
	}
	s.pos = 0
	s.n = n
	return nil
}

func (s *scanner) readByte() (byte, error) {
	if s.pos >= s.n {
		if err := s.fill(); err != nil {
			return 0, err
		}
	}
	b := s.buf[s.pos]
	s.pos++
	return b, nil
}

func (s *scanner) peekByte() (byte, error) {
	if s.pos >= s.n {
		if err := s.fill(); err != nil {
			return 0, err
		}
	}
	return s.buf[s.pos], nil
}

func (s *scanner) skipSpace() error {
	for {
		b, err := s.peekByte()
		if err != nil {
			return err
		}
		if b > ' ' {
			return nil
		}
		_, _ = s.readByte()
	}
}

func (s *scanner) readNonSpace() (byte, error) {
	if err := s.skipSpace(); err != nil {
		return 0, err
	}
	return s.readByte()
}

func isHex(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func fromHex(b byte) byte {
	switch {
	case b >= '0' && b <= '9':
		return b - '0'
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10
	default:
		return 0
	}
}

func isTerminator(b byte) bool {
	return b <= ' ' || b == ',' || b == '}' || b == ']'
}

type numState int

const (
	numInvalid numState = iota
	numSign
	numZero
	numInt
	numDot
	numFrac
	numExp
	numExpSign
	numExpDigits
)

func numStartState(first byte) (numState, bool) {
	switch {
	case first == '-':
		return numSign, true
	case first == '0':
		return numZero, true
	case first >= '1' && first <= '9':
		return numInt, true
	default:
		return numInvalid, false
	}
}

func numNextState(state numState, b byte) (numState, bool) {
	switch state {
	case numSign:
		if b == '0' {
			return numZero, true
		}
		if b >= '1' && b <= '9' {
			return numInt, true
		}
		return numInvalid, false
	case numZero:
		switch b {
		case '.':
			return numDot, true
		case 'e', 'E':
			return numExp, true
		}
		return numInvalid, false
	case numInt:
		switch b {
		case '.':
			return numDot, true
		case 'e', 'E':
			return numExp, true
		}
		if b >= '0' && b <= '9' {
			return numInt, true
		}
		return numInvalid, false
	case numDot:
		if b >= '0' && b <= '9' {
			return numFrac, true
		}
		return numInvalid, false
	case numFrac:
		switch b {
		case 'e', 'E':
			return numExp, true
		}
		if b >= '0' && b <= '9' {
			return numFrac, true
		}
		return numInvalid, false
	case numExp:
		switch b {
		case '+', '-':
			return numExpSign, true
		}
		if b >= '0' && b <= '9' {
			return numExpDigits, true
		}
		return numInvalid, false
	case numExpSign:
		if b >= '0' && b <= '9' {
			return numExpDigits, true
		}
		return numInvalid, false
	case numExpDigits:
		if b >= '0' && b <= '9' {
			return numExpDigits, true
		}
		return numInvalid, false
	default:
		return numInvalid, false
	}
}

func numIsTerminal(state numState) bool {
	switch state {
	case numZero, numInt, numFrac, numExpDigits:
		return true
	default:
		return false
	}
}
