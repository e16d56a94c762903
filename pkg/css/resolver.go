package css

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedOverrideSegment is wrapped by MalformedSegmentError.
var ErrMalformedOverrideSegment = errors.New("malformed style override segment")

// MalformedSegmentError reports a style override segment without a
// "key: value" shape.
type MalformedSegmentError struct {
	Index   int
	Segment string
}

func (e *MalformedSegmentError) Error() string {
	return fmt.Sprintf("style override segment %d %q: missing key or ':'", e.Index, e.Segment)
}

func (e *MalformedSegmentError) Unwrap() error {
	return ErrMalformedOverrideSegment
}

// ParseClassOverride parses a space-delimited class override.
func ParseClassOverride(s string) *TokenSet {
	return NewTokenSet(s)
}

// ParseStyleOverride parses a "key: value; key: value" override, skipping
// malformed segments. The value is everything after the first ':' so values
// such as "url(http://x)" survive intact. Later duplicates overwrite earlier
// ones.
func ParseStyleOverride(s string) *StyleMap {
	m, _ := parseStyleOverride(s)
	return m
}

// ParseStyleOverrideStrict is ParseStyleOverride that reports the first
// malformed segment as a *MalformedSegmentError.
func ParseStyleOverrideStrict(s string) (*StyleMap, error) {
	return parseStyleOverride(s)
}

func parseStyleOverride(s string) (*StyleMap, error) {
	m := &StyleMap{}
	var firstErr error
	for i, seg := range strings.Split(s, ";") {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		key, value, ok := strings.Cut(seg, ":")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			if firstErr == nil {
				firstErr = &MalformedSegmentError{Index: i, Segment: seg}
			}
			continue
		}
		// Blank values are dropped by Set.
		m.Set(key, value)
	}
	return m, firstErr
}

// Input is the element configuration read at resolution time.
type Input struct {
	Disabled      bool
	ReadOnly      bool
	ClassOverride string
	StyleOverride string
	Classes       *TokenSet
	Styles        *StyleMap
}

func (in Input) state() State {
	return State{Disabled: in.Disabled, ReadOnly: in.ReadOnly}
}

// Resolver merges base declarations, state rules and overrides.
// Overrides seed the result in place of the base declarations; state output is
// then appended only where the seed does not already define it. Every call
// re-derives state from the Input, so nothing is cached between calls.
type Resolver struct {
	// Rules replaces DefaultStateRules when non-nil.
	Rules []StateRule
}

func (r Resolver) rules() []StateRule {
	if r.Rules != nil {
		return r.Rules
	}
	return DefaultStateRules
}

// ResolveClass returns the final class attribute value.
func (r Resolver) ResolveClass(in Input) string {
	return r.classSet(in).String()
}

func (r Resolver) classSet(in Input) *TokenSet {
	stateTokens, _ := DeriveStateWith(r.rules(), in.state())

	var seed *TokenSet
	if strings.TrimSpace(in.ClassOverride) != "" {
		seed = ParseClassOverride(in.ClassOverride)
	} else {
		seed = in.Classes.Clone()
	}
	return seed.Union(stateTokens)
}

// ResolveStyle returns the final style attribute value. Malformed override
// segments are skipped.
func (r Resolver) ResolveStyle(in Input) string {
	s, _ := r.styleMap(in, false)
	return s.String()
}

// ResolveStyleStrict resolves like ResolveStyle, except that a malformed
// override is rejected as a whole: the base declarations seed the result and
// the parse error is returned alongside it. The returned string is always
// usable.
func (r Resolver) ResolveStyleStrict(in Input) (string, error) {
	s, err := r.styleMap(in, true)
	return s.String(), err
}

func (r Resolver) styleMap(in Input, strict bool) (*StyleMap, error) {
	_, stateStyles := DeriveStateWith(r.rules(), in.state())

	var seed *StyleMap
	var err error
	if strings.TrimSpace(in.StyleOverride) != "" {
		seed, err = parseStyleOverride(in.StyleOverride)
		if err != nil && strict {
			seed = in.Styles.Clone()
		} else if !strict {
			err = nil
		}
	} else {
		seed = in.Styles.Clone()
	}

	for _, p := range stateStyles.entries {
		seed.setIfAbsent(p.Key, p.Value)
	}
	return seed, err
}

// Snapshot captures the intermediate values of one resolution for
// diagnostics. It never feeds back into resolution.
type Snapshot struct {
	BaseClasses   string
	StateClasses  string
	Class         string
	BaseStyles    string
	StateStyles   string
	Style         string
	OverrideError error
}

// Snapshot resolves in and records the layers that produced the output.
// Style is the lenient ResolveStyle result; OverrideError still reports the
// first malformed segment that was skipped.
func (r Resolver) Snapshot(in Input) Snapshot {
	return r.snapshot(in, false)
}

// SnapshotStrict is Snapshot for elements rendered through
// ResolveStyleStrict: Style is the strict result.
func (r Resolver) SnapshotStrict(in Input) Snapshot {
	return r.snapshot(in, true)
}

func (r Resolver) snapshot(in Input, strict bool) Snapshot {
	stateTokens, stateStyles := DeriveStateWith(r.rules(), in.state())
	style, err := r.ResolveStyleStrict(in)
	if !strict {
		style = r.ResolveStyle(in)
	}
	return Snapshot{
		BaseClasses:   in.Classes.String(),
		StateClasses:  stateTokens.String(),
		Class:         r.ResolveClass(in),
		BaseStyles:    in.Styles.String(),
		StateStyles:   stateStyles.String(),
		Style:         style,
		OverrideError: err,
	}
}
