package locale

import (
	"fmt"
	"slices"
	"unicode"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/rbott/blog-siteconfig/app/config"
)

// Collator compares strings according to the site's locale sort settings.
// A Collator is not safe for concurrent use; create one per goroutine.
type Collator struct {
	tag      language.Tag
	collator *collate.Collator

	// stripMarks removes accents before comparing, nil when accents count
	stripMarks transform.Transformer
}

// NewCollator builds a collator for the given sort settings
func NewCollator(sort config.LocaleSort) (*Collator, error) {
	tag, err := language.Parse(sort.Language)
	if err != nil {
		return nil, fmt.Errorf("invalid sort language %q: %w", sort.Language, err)
	}

	c := &Collator{tag: tag}

	var opts []collate.Option

	switch sort.Options.Sensitivity {
	case config.SensitivityBase:
		opts = append(opts, collate.IgnoreCase, collate.IgnoreDiacritics)
	case config.SensitivityAccent:
		opts = append(opts, collate.IgnoreCase)
	case config.SensitivityCase:
		// collate.IgnoreDiacritics alone still orders "a" and "á" apart
		c.stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	case config.SensitivityVariant, "":
	default:
		return nil, fmt.Errorf("unsupported sensitivity %q", sort.Options.Sensitivity)
	}

	if sort.Options.Numeric {
		opts = append(opts, collate.Numeric)
	}

	c.collator = collate.New(tag, opts...)

	return c, nil
}

// Language returns the collation language
func (c *Collator) Language() language.Tag {
	return c.tag
}

// Compare returns -1, 0 or 1 depending on the collation order of a and b
func (c *Collator) Compare(a, b string) int {
	if c.stripMarks != nil {
		a = c.removeMarks(a)
		b = c.removeMarks(b)
	}
	return c.collator.CompareString(a, b)
}

func (c *Collator) removeMarks(s string) string {
	out, _, err := transform.String(c.stripMarks, s)
	if err != nil {
		return s
	}
	return out
}

// Equal reports whether a and b are equal at the configured sensitivity
func (c *Collator) Equal(a, b string) bool {
	return c.Compare(a, b) == 0
}

// SortStrings sorts values in place
func (c *Collator) SortStrings(values []string) {
	if c.stripMarks == nil {
		c.collator.SortStrings(values)
		return
	}
	slices.SortStableFunc(values, c.Compare)
}
