package engine

// Classification describes how a single token was classified.
type Classification struct {
	// Token is the token as supplied
	Token string `json:"token"`

	// Modifiers is the colon-terminated variant prefix
	Modifiers string `json:"modifiers,omitempty"`

	// Base is the token without modifiers
	Base string `json:"base"`

	// Arbitrary reports a bracketed arbitrary value
	Arbitrary bool `json:"arbitrary,omitempty"`

	// Group is the conflict group (empty when unclassified)
	Group string `json:"group,omitempty"`

	// Key is Modifiers + Group (empty when unclassified)
	Key string `json:"key,omitempty"`
}

// Classified reports whether the token belongs to a conflict group.
func (c Classification) Classified() bool {
	return c.Group != ""
}
