package guardrail

import (
	"fmt"
	"regexp"
)

// Pattern is a named sensitive-data rule: a regular expression and the
// mask token that replaces every match. Patterns are immutable after
// construction and safe for concurrent use.
type Pattern struct {
	Name string
	Mask string
	re   *regexp.Regexp
}

func NewPattern(name string, expr string, mask string) (Pattern, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return Pattern{}, fmt.Errorf("invalid pattern %s: %w", name, err)
	}

	return Pattern{
		Name: name,
		Mask: mask,
		re:   re,
	}, nil
}

// Matches reports whether the text contains the pattern. Pure, no side effects.
func (p Pattern) Matches(text string) bool {
	return p.re.MatchString(text)
}

const (
	PhoneMask      = "****PH.NO****"
	NationalIDMask = "****UAE.ID****"
)

var (
	// UAE mobile number: +971, optional space, prefix digit 5-9,
	// optional space, then 8 more digits (9 local digits total).
	uaePhoneRe = regexp.MustCompile(`\+971\s?[5-9]\d\s?\d{7}`)

	// Emirates ID: 784, then groups of 4, 7 and 1 digits, each group
	// optionally separated by space, dot or hyphen. Anchored to the
	// whole string exactly as the upstream rule was written, so an ID
	// in the middle of a sentence never matches. Kept verbatim until
	// the rule owner signs off on a search-anywhere match; override
	// via the YAML rule file if needed.
	uaeNationalIDRe = regexp.MustCompile(`^784[ .-]?\d{4}[ .-]?\d{7}[ .-]?\d{1}$`)
)

// DefaultPatterns returns the built-in rule set. Order matters: the
// phone rule runs first and its output feeds the national ID check.
func DefaultPatterns() []Pattern {
	return []Pattern{
		{Name: "UAE_PHONE_NUMBER", Mask: PhoneMask, re: uaePhoneRe},
		{Name: "UAE_EMIRATES_ID", Mask: NationalIDMask, re: uaeNationalIDRe},
	}
}
