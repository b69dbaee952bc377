package jsonpp

import (
	"bytes"
	"errors"
	"math"
)

type errWriter struct{}

func (errWriter) Write(_ []byte) (int, error) {
	return 0, errors.New("write err")
}

type failAfterWriter struct {
	count int
	fail  int
	buf   bytes.Buffer
}

func (w *failAfterWriter) Write(p []byte) (int, error) {
	w.count++
	if w.count > w.fail {
		return 0, errors.New("write err")
	}
	return w.buf.Write(p)
}

type stringWriter struct {
	buf bytes.Buffer
}

func (w *stringWriter) Write(p []byte) (int, error) {
	return w.buf.Write(p)
}

func (w *stringWriter) WriteString(s string) (int, error) {
	return w.buf.WriteString(s)
}

func (w *stringWriter) String() string {
	return w.buf.String()
}

type byteWriter struct {
	buf bytes.Buffer
}

func (w *byteWriter) Write(p []byte) (int, error) {
	return w.buf.Write(p)
}

func (w *byteWriter) WriteByte(b byte) error {
	return w.buf.WriteByte(b)
}

func (w *byteWriter) String() string {
	return w.buf.String()
}

type errReader struct{}

func (errReader) Read(_ []byte) (int, error) {
	return 0, errors.New("read err")
}

// valueEqual compares trees structurally. NaN floats compare equal to each
// other so round-trip checks can include the non-finite extension.
func valueEqual(a, b Value) bool {
	switch x := a.(type) {
	case Null:
		_, ok := b.(Null)
		return ok
	case Bool:
		y, ok := b.(Bool)
		return ok && x == y
	case Int:
		y, ok := b.(Int)
		return ok && x == y
	case Float:
		y, ok := b.(Float)
		if !ok {
			return false
		}
		if math.IsNaN(float64(x)) && math.IsNaN(float64(y)) {
			return true
		}
		return x == y
	case String:
		y, ok := b.(String)
		return ok && x == y
	case Array:
		y, ok := b.(Array)
		if !ok || len(x) != len(y) {
			return false
		}
		for i := range x {
			if !valueEqual(x[i], y[i]) {
				return false
			}
		}
		return true
	case *Object:
		y, ok := b.(*Object)
		if !ok || x.Len() != y.Len() {
			return false
		}
		xk := x.Keys()
		yk := y.Keys()
		for i, k := range xk {
			if yk[i] != k {
				return false
			}
			xv, _ := x.Get(k)
			yv, _ := y.Get(k)
			if !valueEqual(xv, yv) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func mustParse(in string) Value {
	v, err := Parse([]byte(in))
	if err != nil {
		panic(err)
	}
	return v
}
