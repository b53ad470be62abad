// Package censor tracks the spans of a document the user wants masked before
// it leaves the editor.
//
// A [Set] is an ordered collection of disjoint, half-open [Range] values over
// rune offsets. Overlapping or touching ranges are merged on insert, so the
// set can be applied to the original text in a single pass without any
// offset bookkeeping.
//
// [FindSecrets] runs regex heuristics for common secret shapes (API keys,
// JWTs, private key headers, AWS access keys, bearer tokens and
// provider-specific tokens) and reports their ranges so they can be added to
// a set automatically.
package censor
