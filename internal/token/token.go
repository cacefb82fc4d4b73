// Package token implements the utility class token grammar.
//
// A token is an opaque class name optionally prefixed by colon-terminated
// modifiers ("hover:focus:") and followed by a base name. A base name of the
// shape "<stem>-[<value>]" carries an arbitrary value; only its "<stem>-"
// part takes part in classification.
//
// Key responsibilities:
//   - Flatten whitespace-separated class lists into one ordered sequence
//   - Split a token into its modifier string and base name
//   - Recognize arbitrary-value base names
package token

import "strings"

// Token is a single class name split into its modifier prefix and base name.
type Token struct {
	// Raw is the token exactly as supplied.
	Raw string

	// Modifiers is everything up to and including the last top-level colon
	// (empty when the token has no modifiers).
	Modifiers string

	// Base is the final colon-separated segment.
	Base string
}

// Fields splits every list on whitespace and concatenates the results,
// preserving order across and within lists.
func Fields(lists ...string) []string {
	var out []string
	for _, list := range lists {
		out = append(out, strings.Fields(list)...)
	}
	return out
}

// Parse splits raw into modifiers and base name. Colons inside brackets and
// escaped characters do not separate modifiers.
func Parse(raw string) Token {
	last := -1
	depth := 0
	for i := 0; i < len(raw); i++ {
		switch raw[i] {
		case '\\':
			i++
		case '[':
			depth++
		case ']':
			if depth > 0 {
				depth--
			}
		case ':':
			if depth == 0 {
				last = i
			}
		}
	}

	return Token{
		Raw:       raw,
		Modifiers: raw[:last+1],
		Base:      raw[last+1:],
	}
}

// ArbitraryKey reports whether base has the shape "<stem>-[<value>]" and, if
// so, returns "<stem>-". The bracket opened after the stem must close at the
// final byte of base; stem and value must both be non-empty.
func ArbitraryKey(base string) (string, bool) {
	if !strings.HasSuffix(base, "]") {
		return "", false
	}

	open := strings.Index(base, "-[")
	if open <= 0 {
		return "", false
	}

	depth := 0
	for i := open + 1; i < len(base); i++ {
		switch base[i] {
		case '\\':
			i++
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				// Closed early (trailing text) or empty payload.
				if i != len(base)-1 || i == open+2 {
					return "", false
				}
				return base[:open+1], true
			}
		}
	}

	return "", false
}
