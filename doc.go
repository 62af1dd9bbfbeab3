// Package logview provides a zero-copy, line-oriented view over log text.
//
// A Buffer holds one immutable copy of a log and an index of its line breaks.
// Everything derived from it (lines, slices, selections, tokens, extracted
// values) is a view into that single backing string. Nothing is copied and
// nothing is ever mutated after construction, so a Buffer and every view
// derived from it can be shared freely between goroutines.
//
// Basic usage:
//
//	buf := logview.New(content)
//	fmt.Println(buf.Len()) // number of lines
//
//	// Random access
//	if line, ok := buf.Get(1); ok {
//	    fmt.Println(line.String())
//	}
//
//	// Narrowing never copies text
//	errs := buf.Slice(100, 200).Select([]int{3, 17, 42})
//
//	// Parallel map with sequential ordering
//	lengths := logview.ParMap(buf, func(l logview.Line) int { return l.Len() })
//
// Related packages:
//   - shared: the view containers Buffer is built from
//   - cutindex: the line index
//   - pattern: literal, regex and character-set search plus Split
//   - tokenize: the log tokenizer
//   - window: sliding windows, n-grams and round robin
//   - extract: date/time, IP and socket address extractors
//   - config: YAML and environment configuration
package logview
