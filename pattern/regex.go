package pattern

import (
	"fmt"

	"github.com/coregx/coregex"

	"github.com/coregx/logview/shared"
)

// Regex matches a regular expression. It is safe for concurrent use.
type Regex struct {
	re *coregex.Regex
}

// CompileError reports an expression that failed to compile.
type CompileError struct {
	Expr string
	Err  error
}

// Error implements the error interface.
func (e *CompileError) Error() string {
	return fmt.Sprintf("pattern: compiling %q: %v", e.Expr, e.Err)
}

// Unwrap returns the underlying error.
func (e *CompileError) Unwrap() error {
	return e.Err
}

// CompileRegex compiles expr.
func CompileRegex(expr string) (*Regex, error) {
	re, err := coregex.Compile(expr)
	if err != nil {
		return nil, &CompileError{Expr: expr, Err: err}
	}
	return &Regex{re: re}, nil
}

// MustCompileRegex is like CompileRegex but panics on error.
func MustCompileRegex(expr string) *Regex {
	r, err := CompileRegex(expr)
	if err != nil {
		panic(err)
	}
	return r
}

// String returns the source expression.
func (r *Regex) String() string {
	return r.re.String()
}

// Searcher implements shared.Pattern. Matches of zero width are skipped.
func (r *Regex) Searcher(haystack shared.Text) shared.Searcher {
	return &regexSearcher{re: r.re, hay: haystack.String()}
}

// regexSearcher resolves all matches on first use so that anchors and word
// boundaries see the whole haystack rather than the unsearched tail.
type regexSearcher struct {
	re      *coregex.Regex
	hay     string
	matches [][]int
	next    int
	primed  bool
}

func (s *regexSearcher) NextMatch() (int, int, bool) {
	if !s.primed {
		s.matches = s.re.FindAllStringIndex(s.hay, -1)
		s.primed = true
	}
	for s.next < len(s.matches) {
		m := s.matches[s.next]
		s.next++
		if m[1] > m[0] {
			return m[0], m[1], true
		}
	}
	return 0, 0, false
}
