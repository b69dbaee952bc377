package jsonpp

import (
	"bytes"
	"errors"
	"io"

	"pkt.systems/jpact"
)

// CompactTo streams compacted JSON to the provided writer, one document per
// output line. Multiple whitespace-separated documents in the input are
// supported. When opts.Unwrap is true, JSON-looking strings are decoded
// recursively before compaction.
func CompactTo(w io.Writer, r io.Reader, opts *Options) error {
	if opts == nil {
		opts = DefaultOptions
	}
	if opts.Unwrap {
		return compactUnwrap(w, r)
	}
	return compactRaw(w, r)
}

// CompactToBuffer compacts JSON into memory, preserving the
// one-document-per-line behavior of CompactTo.
func CompactToBuffer(r io.Reader, opts *Options) ([]byte, error) {
	var buf bytes.Buffer
	if err := CompactTo(&buf, r, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

var newlineBytes = []byte{'\n'}

func writeNewline(w io.Writer) error {
	if bw, ok := w.(io.ByteWriter); ok {
		return bw.WriteByte('\n')
	}
	_, err := w.Write(newlineBytes)
	return err
}

// compactRaw frames documents straight off the byte stream and feeds each
// one to the compact writer without materializing a tree.
func compactRaw(w io.Writer, r io.Reader) error {
	dr := acquireDocumentReader(r)
	defer releaseDocumentReader(dr)

	for {
		if err := dr.Start(); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if err := jpact.CompactWriter(w, dr, 0); err != nil {
			return err
		}
		if err := writeNewline(w); err != nil {
			return err
		}
		dr.Rewind()
	}
}

// compactUnwrap decodes each document, unwraps nested JSON strings, renders
// the tree plainly, and compacts the result.
func compactUnwrap(w io.Writer, r io.Reader) error {
	dec := acquireDecoder(r)
	defer releaseDecoder(dec)

	var buf bytes.Buffer
	for {
		v, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		v = Unwrap(v, MaxUnwrapDepth)

		buf.Reset()
		if err := Render(&buf, v, DefaultOptions); err != nil {
			return err
		}
		if err := jpact.CompactWriter(w, &buf, 0); err != nil {
			return err
		}
		if err := writeNewline(w); err != nil {
			return err
		}
	}
}

type docMode int

const (
	docScalar docMode = iota
	docString
	docStruct
)

// documentReader exposes exactly one JSON document from the underlying
// stream as an io.Reader, tracking bracket depth and string state so the
// document boundary is found without parsing. Rewind prepares it for the
// next document on the same stream.
type documentReader struct {
	scanner scanner

	started bool
	done    bool
	mode    docMode
	depth   int
	inStr   bool
	escape  bool
	pending byte
	hasPend bool
}

func (d *documentReader) Rewind() {
	d.started = false
	d.done = false
	d.mode = docScalar
	d.depth = 0
	d.inStr = false
	d.escape = false
	d.hasPend = false
	d.pending = 0
}

// Start positions the reader at the first byte of the next document. It
// returns io.EOF when the stream holds nothing but whitespace.
func (d *documentReader) Start() error {
	if d.started {
		return nil
	}
	b, err := d.scanner.readNonSpace()
	if err != nil {
		return err
	}
	d.started = true
	d.pending = b
	d.hasPend = true
	switch b {
	case '{', '[':
		d.mode = docStruct
		d.depth = 1
	case '"':
		d.mode = docString
		d.inStr = true
	default:
		d.mode = docScalar
	}
	return nil
}

func (d *documentReader) Read(p []byte) (int, error) {
	if d.done {
		return 0, io.EOF
	}
	if !d.started {
		if err := d.Start(); err != nil {
			return 0, err
		}
	}
	if len(p) == 0 {
		return 0, nil
	}

	n := 0
	for n < len(p) {
		b, err := d.nextByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				if n == 0 {
					return 0, io.EOF
				}
				return n, nil
			}
			return n, err
		}
		p[n] = b
		n++
	}
	return n, nil
}

func (d *documentReader) nextByte() (byte, error) {
	if d.done {
		return 0, io.EOF
	}
	if d.hasPend {
		d.hasPend = false
		return d.pending, nil
	}

	switch d.mode {
	case docString:
		b, err := d.scanner.readByte()
		if err != nil {
			return 0, err
		}
		switch {
		case d.escape:
			d.escape = false
		case b == '\\':
			d.escape = true
		case b == '"':
			d.done = true
		}
		return b, nil
	case docStruct:
		b, err := d.scanner.readByte()
		if err != nil {
			return 0, err
		}
		if d.inStr {
			switch {
			case d.escape:
				d.escape = false
			case b == '\\':
				d.escape = true
			case b == '"':
				d.inStr = false
			}
			return b, nil
		}
		switch b {
		case '"':
			d.inStr = true
		case '{', '[':
			d.depth++
		case '}', ']':
			d.depth--
			if d.depth == 0 {
				d.done = true
			}
		}
		return b, nil
	default:
		b, err := d.scanner.peekByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				d.done = true
			}
			return 0, err
		}
		if isTerminator(b) {
			d.done = true
			return 0, io.EOF
		}
		b, _ = d.scanner.readByte()
		return b, nil
	}
}
