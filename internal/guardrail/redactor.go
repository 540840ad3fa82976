package guardrail

// Redact replaces every occurrence of the pattern with its mask token.
// The input is never mutated, a new string is returned.
func Redact(text string, pattern Pattern) string {
	return pattern.re.ReplaceAllString(text, pattern.Mask)
}
