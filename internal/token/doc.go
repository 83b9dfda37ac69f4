// Package token describes the lexical vocabulary that matters to name
// resolution in FEEL.
// Invariants:
//   - Keywords are case-sensitive; only lowercase spellings are reserved.
//   - A variable name is a sequence of fragments; SplitName produces the same
//     fragments a FEEL tokenizer emits for that name, so prefix matching over
//     fragments agrees with the token stream.
//   - Reusable keywords may continue a name only when the active scope
//     expects them. That decision belongs to the caller.
package token
