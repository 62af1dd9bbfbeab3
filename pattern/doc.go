// Package pattern implements the search patterns used to scan and split log
// text.
//
// Four patterns are provided, all satisfying shared.Pattern:
//   - Literal: an exact substring
//   - Regex: a compiled regular expression (github.com/coregx/coregex)
//   - CharSet: any single character from a set
//   - LiteralSet: any of many substrings (Aho-Corasick)
//
// Every pattern yields non-overlapping, strictly advancing matches. A pattern
// that could only ever match the empty string never matches, so splitting on
// it returns the input unsplit.
//
// Basic usage:
//
//	text := shared.NewText("a=1, b=2")
//	for field := range pattern.Split(text, pattern.Literal(", ")).All() {
//	    fmt.Println(field) // "a=1" then "b=2"
//	}
package pattern

import "errors"

// ErrEmptyPattern is returned when a pattern set contains no usable pattern.
var ErrEmptyPattern = errors.New("pattern: no non-empty patterns")
