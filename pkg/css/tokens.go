// Package css resolves the final class list and inline style string of a UI
// element from its base declarations, its state-derived rules, and the
// caller-supplied overrides.
//
// Class tokens and style property names compare case-insensitively. Keys are
// folded explicitly (see fold) and the casing of the first insertion is kept
// for output.
package css

import (
	"strings"

	"golang.org/x/text/cases"
)

// fold returns the comparison key for a class token or property name.
func fold(s string) string {
	return cases.Fold().String(s)
}

// TokenSet is an insertion-ordered set of class tokens.
// The zero value is an empty set ready to use.
type TokenSet struct {
	tokens []string
	keys   map[string]struct{}
}

// NewTokenSet returns a set seeded with every token found in texts.
func NewTokenSet(texts ...string) *TokenSet {
	s := &TokenSet{}
	for _, t := range texts {
		s.Add(t)
	}
	return s
}

// Add splits text on whitespace and inserts each token not already present.
// Blank input and a nil set are no-ops.
func (s *TokenSet) Add(text string) {
	if s == nil {
		return
	}
	for _, tok := range strings.Fields(text) {
		s.insert(tok)
	}
}

func (s *TokenSet) insert(tok string) bool {
	key := fold(tok)
	if s.keys == nil {
		s.keys = make(map[string]struct{})
	}
	if _, ok := s.keys[key]; ok {
		return false
	}
	s.keys[key] = struct{}{}
	s.tokens = append(s.tokens, tok)
	return true
}

// Remove splits text on whitespace and removes each matching token.
func (s *TokenSet) Remove(text string) {
	if s == nil {
		return
	}
	for _, tok := range strings.Fields(text) {
		key := fold(tok)
		if _, ok := s.keys[key]; !ok {
			continue
		}
		delete(s.keys, key)
		for i, existing := range s.tokens {
			if fold(existing) == key {
				s.tokens = append(s.tokens[:i], s.tokens[i+1:]...)
				break
			}
		}
	}
}

// Contains reports whether token is in the set.
func (s *TokenSet) Contains(token string) bool {
	if s == nil {
		return false
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return false
	}
	_, ok := s.keys[fold(token)]
	return ok
}

// Union returns a new set holding the tokens of s followed by the tokens of
// other that s does not already contain. On a casing conflict s wins.
func (s *TokenSet) Union(other *TokenSet) *TokenSet {
	out := s.Clone()
	if other == nil {
		return out
	}
	for _, tok := range other.tokens {
		out.insert(tok)
	}
	return out
}

// Clone returns an independent copy of s. A nil set clones to an empty one.
func (s *TokenSet) Clone() *TokenSet {
	out := &TokenSet{}
	if s == nil {
		return out
	}
	for _, tok := range s.tokens {
		out.insert(tok)
	}
	return out
}

// Tokens returns the tokens in insertion order.
func (s *TokenSet) Tokens() []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s.tokens))
	copy(out, s.tokens)
	return out
}

// Len returns the number of tokens.
func (s *TokenSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.tokens)
}

// String joins the tokens with single spaces, ready for a class attribute.
func (s *TokenSet) String() string {
	if s == nil {
		return ""
	}
	return strings.Join(s.tokens, " ")
}
