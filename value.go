package jsonpp

// Kind identifies the variant of a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindArray
	KindObject
)

// Value is one node of a parsed JSON document. The renderer only reads
// Values; it never mutates them. Integers and floats are distinct kinds so
// that 1 and 1.0 keep their textual identity through a round trip, and a
// Bool is never a numeric value.
type Value interface {
	Kind() Kind
}

// Null is the JSON null literal.
type Null struct{}

// Bool is a JSON true or false literal.
type Bool bool

// Int is a JSON number without a fractional or exponent part.
type Int int64

// Float is a JSON number with a fractional or exponent part, or one of the
// non-finite extensions NaN, Infinity, and -Infinity.
type Float float64

// String is a JSON string.
type String string

// Array is an ordered sequence of Values.
type Array []Value

func (Null) Kind() Kind   { return KindNull }
func (Bool) Kind() Kind   { return KindBool }
func (Int) Kind() Kind    { return KindInt }
func (Float) Kind() Kind  { return KindFloat }
func (String) Kind() Kind { return KindString }
func (Array) Kind() Kind  { return KindArray }

// Object is a JSON object that preserves key insertion order. Keys are held
// in a slice alongside a lookup index so iteration order is deterministic
// regardless of how the map type behaves.
type Object struct {
	keys  []string
	index map[string]int
	vals  []Value
}

func (*Object) Kind() Kind { return KindObject }

// NewObject returns an empty object.
func NewObject() *Object {
	return &Object{index: make(map[string]int)}
}

// Len reports the number of entries.
func (o *Object) Len() int {
	return len(o.keys)
}

// Set appends key with the given value, or replaces the value in place when
// the key already exists. The key keeps its original position either way.
func (o *Object) Set(key string, v Value) {
	if i, ok := o.index[key]; ok {
		o.vals[i] = v
		return
	}
	if o.index == nil {
		o.index = make(map[string]int)
	}
	o.index[key] = len(o.keys)
	o.keys = append(o.keys, key)
	o.vals = append(o.vals, v)
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (Value, bool) {
	i, ok := o.index[key]
	if !ok {
		return nil, false
	}
	return o.vals[i], true
}

// Keys returns the keys in insertion order. The slice is a copy; callers may
// sort or otherwise reorder it freely.
func (o *Object) Keys() []string {
	keys := make([]string, len(o.keys))
	copy(keys, o.keys)
	return keys
}
