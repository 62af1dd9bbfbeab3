package shared

// Pattern is anything that can search a Text: a literal, a compiled regular
// expression, a character set. Implementations live in the pattern package.
type Pattern interface {
	// Searcher returns a cursor over the matches of the pattern in haystack.
	Searcher(haystack Text) Searcher
}

// Searcher is a forward-only cursor over the matches of a Pattern.
type Searcher interface {
	// NextMatch returns the byte span [start, end) of the next match,
	// relative to the haystack view. Successive matches never overlap and
	// never move backwards. ok is false once the searcher is exhausted.
	NextMatch() (start, end int, ok bool)
}
