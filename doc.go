// Package jsonpp pretty-prints JSON as indented, optionally colorized,
// optionally key-sorted text with configurable escaping.
//
// The package separates structural traversal from presentation: a recursive
// renderer walks a parsed Value tree and describes the output as a stream
// of semantically tagged events (raw text, brackets, delimiters, scalar
// tokens, string boundaries, escape sequences), and a Sink turns those
// events into bytes. PlainSink passes text through unchanged; StyledSink
// wraps string and scalar events in ANSI color codes. Swapping the sink
// changes styling without touching traversal logic.
//
// Object key insertion order survives decoding and rendering; floats and
// integers stay distinct kinds so 1 and 1.0 round-trip textually; and
// non-finite floats render as the bare tokens NaN, Infinity, and -Infinity,
// an intentional extension beyond strict JSON.
//
// Basic usage:
//
//	out, err := jsonpp.Pretty([]byte(`{"b":1,"a":2}`), nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Print(string(out))
//
// Streaming, with sorted keys and color:
//
//	opts := &jsonpp.Options{Indent: "  ", SortKeys: true, Color: true}
//	if err := jsonpp.PrettyTo(os.Stdout, os.Stdin, opts); err != nil {
//		log.Fatal(err)
//	}
package jsonpp
