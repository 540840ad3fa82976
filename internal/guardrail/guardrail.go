package guardrail

import (
	"github.com/rs/zerolog/log"
)

// Result is any value the synthesis stage produced. The validator
// assumes nothing beyond a display-string conversion.
type Result interface {
	DisplayString() string
}

// Text adapts a plain string to the Result interface.
type Text string

func (t Text) DisplayString() string {
	return string(t)
}

// Verdict is the validation outcome returned to the task runner.
// When Accepted is true, Result holds the original value untouched.
// When Accepted is false, Payload carries either the redacted text
// (the runner may retry the synthesis stage) or an error message.
type Verdict struct {
	Accepted bool
	Result   Result
	Payload  string
	Redacted bool
}

const faultPayload = "Unexpected error during validation"

// Validator checks a task result for sensitive data. It is stateless,
// performs no I/O and is safe for concurrent use. Retry orchestration
// belongs to the caller, Validate is single shot.
type Validator struct {
	patterns []Pattern
}

func NewValidator(patterns []Pattern) *Validator {
	if len(patterns) == 0 {
		patterns = DefaultPatterns()
	}
	return &Validator{
		patterns: patterns,
	}
}

// Validate converts the result to text and runs every pattern in order.
// Each redaction feeds the next check, so a phone number that also
// resembles an ID is normalized by the phone mask before the ID rule
// runs. Internal faults never escape: they become a rejected verdict
// with a generic payload.
func (v *Validator) Validate(result Result) (verdict Verdict) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("Validation fault")
			verdict = Verdict{Accepted: false, Payload: faultPayload}
		}
	}()

	text := result.DisplayString()
	log.Debug().Str("content", text).Msg("Validating task output")

	redacted := false

	for _, pattern := range v.patterns {
		if !pattern.Matches(text) {
			continue
		}

		text = Redact(text, pattern)
		redacted = true

		log.Warn().
			Str("pattern", pattern.Name).
			Msg("Confidential information detected. Content redacted by masking it")
	}

	if redacted {
		return Verdict{Accepted: false, Payload: text, Redacted: true}
	}

	// Clean pass: hand back the original result object, not the
	// stringified copy.
	return Verdict{Accepted: true, Result: result, Payload: text}
}
