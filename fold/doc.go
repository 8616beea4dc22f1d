// Package fold derives bucket keys from player names by folding accented
// Latin letters onto their ASCII base letter.
//
// Folding decomposes text to NFD, strips combining marks (Unicode category Mn)
// and recomposes to NFC, so Á→A, é→e, Ç→C, ñ→n, ü→u and so on.
//
// FirstLetter applies the fold to the leading rune only and returns a
// lower-case byte in 'a'..'z'. Anything that is not an ASCII letter after
// folding (digits, punctuation, letters without a decomposition such as Ø,
// the empty name) maps to 'a', i.e. bucket 0. This fallback is a fixed
// policy and callers rely on it for deterministic bucketing.
//
// The caller's string is never modified; only the derived key is folded.
package fold
