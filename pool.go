package jsonpp

import (
	"io"
	"sync"
)

const maxScratchCap = 64 * 1024

var decoderPool = sync.Pool{
	New: func() any {
		return &Decoder{}
	},
}

var documentReaderPool = sync.Pool{
	New: func() any {
		return &documentReader{}
	},
}

func acquireDecoder(r io.Reader) *Decoder {
	d := decoderPool.Get().(*Decoder)
	d.scanner.Reset(r)
	return d
}

func releaseDecoder(d *Decoder) {
	if d == nil {
		return
	}
	d.scanner.Reset(nil)
	if cap(d.scratch) > maxScratchCap {
		d.scratch = nil
	} else {
		d.scratch = d.scratch[:0]
	}
	decoderPool.Put(d)
}

func acquireDocumentReader(r io.Reader) *documentReader {
	d := documentReaderPool.Get().(*documentReader)
	d.scanner.Reset(r)
	d.Rewind()
	return d
}

func releaseDocumentReader(d *documentReader) {
	if d == nil {
		return
	}
	d.scanner.Reset(nil)
	d.Rewind()
	documentReaderPool.Put(d)
}
