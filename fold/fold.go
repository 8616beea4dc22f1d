package fold

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NumBuckets is the number of first-letter buckets, one per letter a..z.
const NumBuckets = 26

// fallback is the key used for names that do not start with a foldable letter.
const fallback = 'a'

// Folder strips diacritics from text.
// A Folder holds transformer state and must not be shared between goroutines.
type Folder struct {
	t transform.Transformer
}

// New returns a ready Folder.
func New() *Folder {
	return &Folder{
		t: transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC),
	}
}

// Fold returns s with combining marks removed.
// If the transformation fails, s is returned unchanged.
func (f *Folder) Fold(s string) string {
	out, _, err := transform.String(f.t, s)
	if err != nil {
		return s
	}

	return out
}

// FirstLetter returns the folded, lower-cased first letter of name,
// or 'a' when the name is empty or does not start with a letter.
func (f *Folder) FirstLetter(name string) byte {
	r, size := utf8.DecodeRuneInString(name)
	if size == 0 || r == utf8.RuneError {
		return fallback
	}
	if r >= utf8.RuneSelf {
		folded := f.Fold(name[:size])
		r, _ = utf8.DecodeRuneInString(folded)
	}
	switch {
	case r >= 'a' && r <= 'z':
		return byte(r)
	case r >= 'A' && r <= 'Z':
		return byte(r - 'A' + 'a')
	default:
		return fallback
	}
}

// BucketIndex maps name to a bucket in [0, NumBuckets).
func (f *Folder) BucketIndex(name string) int {
	return int(f.FirstLetter(name) - 'a')
}
