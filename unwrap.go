package jsonpp

// MaxUnwrapDepth controls how deep Unwrap recursively parses JSON that
// appears inside string values. Example meanings:
//
//	0  -> unwrap once (non-recursive)
//	1  -> unwrap once (same as 0)
//	2+ -> unwrap up to that many recursive levels
var MaxUnwrapDepth = 10

// Unwrap returns a copy of v in which every String that trims to a braced
// or bracketed form and parses cleanly as JSON is replaced by its parsed
// tree, recursing up to depth levels. Strings that fail to parse are kept
// as-is. The input tree is never modified.
func Unwrap(v Value, depth int) Value {
	if depth <= 0 {
		depth = 1
	}
	return unwrapValue(v, depth)
}

func unwrapValue(v Value, depth int) Value {
	switch x := v.(type) {
	case *Object:
		out := NewObject()
		for _, key := range x.keys {
			val, _ := x.Get(key)
			out.Set(key, unwrapValue(val, depth))
		}
		return out
	case Array:
		out := make(Array, len(x))
		for i, el := range x {
			out[i] = unwrapValue(el, depth)
		}
		return out
	case String:
		if depth > 0 {
			if parsed, ok := tryParseInline(string(x)); ok {
				return unwrapValue(parsed, depth-1)
			}
		}
		return x
	default:
		return x
	}
}

func tryParseInline(s string) (Value, bool) {
	trimmed := trimSpaceBytes([]byte(s))
	if !looksLikeJSON(trimmed) {
		return nil, false
	}
	v, err := Parse(trimmed)
	if err != nil {
		return nil, false
	}
	return v, true
}

func trimSpaceBytes(b []byte) []byte {
	start := 0
	end := len(b)
	for start < end && b[start] <= ' ' {
		start++
	}
	for start < end && b[end-1] <= ' ' {
		end--
	}
	return b[start:end]
}

func looksLikeJSON(trimmed []byte) bool {
	if len(trimmed) < 2 {
		return false
	}
	first := trimmed[0]
	last := trimmed[len(trimmed)-1]
	return (first == '{' && last == '}') || (first == '[' && last == ']')
}
