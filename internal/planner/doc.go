// Package planner decides which class tokens survive a merge.
//
// The planner builds a deterministic Plan for an ordered token sequence. Each
// token is classified into a group key (modifiers + conflict group); walking
// from the last token to the first, the first token seen for a key wins and
// every earlier token with the same key is recorded as a Conflict.
//
// Key responsibilities:
//   - Resolve group keys for every token
//   - Keep the last token per group key
//   - Suppress literal duplicates of unclassified tokens
//   - Report what was dropped and which token won
package planner
