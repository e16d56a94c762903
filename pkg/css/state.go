package css

// Class tokens contributed by the default state rules.
const (
	ClassOpacity50        = "opacity-50"
	ClassCursorNotAllowed = "cursor-not-allowed"
	ClassBgLight          = "bg-light"
)

// State is the set of element flags that drive state rules.
type State struct {
	Disabled bool
	ReadOnly bool
}

// StateRule contributes class tokens and inline styles while When reports true.
type StateRule struct {
	Name    string
	When    func(State) bool
	Classes []string
	Styles  []Property
}

// DefaultStateRules is the rule table used when a Resolver has no Rules.
// It contributes classes only; inline-style rules are supported through a
// custom table.
var DefaultStateRules = []StateRule{
	{
		Name:    "disabled",
		When:    func(s State) bool { return s.Disabled },
		Classes: []string{ClassOpacity50, ClassCursorNotAllowed},
	},
	{
		Name:    "readonly",
		When:    func(s State) bool { return s.ReadOnly },
		Classes: []string{ClassBgLight},
	},
}

// DeriveState applies DefaultStateRules to the given flags.
func DeriveState(disabled, readOnly bool) (*TokenSet, *StyleMap) {
	return DeriveStateWith(DefaultStateRules, State{Disabled: disabled, ReadOnly: readOnly})
}

// DeriveStateWith applies rules in order and accumulates their output.
// The result is computed fresh on every call.
func DeriveStateWith(rules []StateRule, st State) (*TokenSet, *StyleMap) {
	tokens := &TokenSet{}
	styles := &StyleMap{}
	for _, rule := range rules {
		if rule.When == nil || !rule.When(st) {
			continue
		}
		for _, c := range rule.Classes {
			tokens.Add(c)
		}
		for _, p := range rule.Styles {
			styles.Set(p.Key, p.Value)
		}
	}
	return tokens, styles
}
