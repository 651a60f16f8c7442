// Package anonymizer implements pattern-based renaming of sensitive
// identifiers in text. Every substring matching a compiled pattern is
// replaced by a numbered placeholder, consistently within one run.
package anonymizer

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// DefaultPrefix is the placeholder prefix used when none is configured.
const DefaultPrefix = "column_"

var errZeroWidth = errors.New("pattern matches zero-length strings")

// PatternError reports a match pattern that cannot be used: it either
// fails to compile or can match the empty string.
type PatternError struct {
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid pattern %q: %v", e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() error { return e.Err }

// Pattern is a compiled, validated match pattern. It is validated once
// at compile time and safe for repeated scans.
type Pattern struct {
	re *regexp.Regexp
}

// Compile validates expr and returns a Pattern ready for scanning.
// Patterns that accept the empty string are rejected, since a
// zero-width match would generate placeholders without consuming input.
func Compile(expr string, ignoreCase bool) (*Pattern, error) {
	src := expr
	if ignoreCase {
		src = "(?i)" + src
	}
	re, err := regexp.Compile(src)
	if err != nil {
		return nil, &PatternError{Pattern: expr, Err: err}
	}
	if re.MatchString("") {
		return nil, &PatternError{Pattern: expr, Err: errZeroWidth}
	}
	return &Pattern{re: re}, nil
}

// String returns the source expression of the pattern.
func (p *Pattern) String() string { return p.re.String() }

// Anonymize replaces every non-overlapping match of p in text with the
// placeholder assigned by r. Matches are found left to right; each byte
// is consumed by at most one match. On error no partial output is
// returned.
func (p *Pattern) Anonymize(text string, r *Renamer) (string, error) {
	locs := p.re.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return text, nil
	}

	var b strings.Builder
	b.Grow(len(text))
	last := 0
	for _, loc := range locs {
		// MatchString("") at compile time cannot prove a nonzero
		// minimum match length for every pattern, so guard here too.
		if loc[0] == loc[1] {
			return "", &PatternError{Pattern: p.re.String(), Err: errZeroWidth}
		}
		b.WriteString(text[last:loc[0]])
		b.WriteString(r.Placeholder(text[loc[0]:loc[1]]))
		last = loc[1]
	}
	b.WriteString(text[last:])

	return b.String(), nil
}

// Mapping is one token→placeholder assignment.
type Mapping struct {
	Token       string
	Placeholder string
}

// Renamer assigns placeholders of the form prefix+N to tokens, reusing
// the same placeholder for repeated tokens. Each anonymization run
// constructs its own Renamer; there is no package-level state.
type Renamer struct {
	prefix   string
	foldCase bool
	next     int
	byToken  map[string]string
	order    []Mapping
}

// NewRenamer returns a Renamer with an empty map and a counter starting
// at 1. The prefix is sanitized so generated placeholders are valid SQL
// identifiers. With foldCase, tokens differing only in case share one
// placeholder.
func NewRenamer(prefix string, foldCase bool) *Renamer {
	return &Renamer{
		prefix:   SanitizePrefix(prefix),
		foldCase: foldCase,
		next:     1,
		byToken:  make(map[string]string),
	}
}

func (r *Renamer) key(token string) string {
	if r.foldCase {
		return strings.ToLower(token)
	}
	return token
}

// Placeholder returns the placeholder for token, assigning a new one on
// first sight.
func (r *Renamer) Placeholder(token string) string {
	k := r.key(token)
	if p, ok := r.byToken[k]; ok {
		return p
	}
	p := r.prefix + strconv.Itoa(r.next)
	r.next++
	r.byToken[k] = p
	r.order = append(r.order, Mapping{Token: token, Placeholder: p})
	return p
}

// Preload seeds the renamer with existing assignments, typically loaded
// from a mapping store. The counter resumes after the highest sequence
// number found among placeholders carrying the renamer's prefix, so new
// assignments never collide with preloaded ones.
func (r *Renamer) Preload(mappings []Mapping) {
	for _, m := range mappings {
		k := r.key(m.Token)
		if _, ok := r.byToken[k]; ok {
			continue
		}
		r.byToken[k] = m.Placeholder
		r.order = append(r.order, m)
		if rest, ok := strings.CutPrefix(m.Placeholder, r.prefix); ok {
			if n, err := strconv.Atoi(rest); err == nil && n >= r.next {
				r.next = n + 1
			}
		}
	}
}

// Mappings returns all assignments in insertion order.
func (r *Renamer) Mappings() []Mapping {
	out := make([]Mapping, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of assigned tokens.
func (r *Renamer) Len() int { return len(r.order) }

// SanitizePrefix makes a placeholder prefix identifier-safe.
// - Replaces invalid characters with underscores
// - Prefixes with "_" if the prefix starts with a digit
// - Returns DefaultPrefix for empty prefixes
func SanitizePrefix(prefix string) string {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return DefaultPrefix
	}

	result := make([]rune, 0, len(prefix))
	for _, r := range prefix {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_' {
			result = append(result, r)
		} else {
			result = append(result, '_')
		}
	}

	sanitized := string(result)
	if sanitized[0] >= '0' && sanitized[0] <= '9' {
		sanitized = "_" + sanitized
	}

	return sanitized
}
