package logging

import (
	"fmt"
	"regexp"
	"strings"
)

// sensitiveKeyPatterns for field name redaction.
var sensitiveKeyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(password|passwd|pwd)`),
	regexp.MustCompile(`(?i)(token|api[_-]?key|secret|credential)`),
	regexp.MustCompile(`(?i)(iban|credit[_-]?card|card[_-]?number)`),
	regexp.MustCompile(`(?i)(private[_-]?key|secret[_-]?key)`),
}

// piiPatterns for value redaction.
var piiPatterns = []*regexp.Regexp{
	// Email
	regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`),
	// E.164 phone
	regexp.MustCompile(`\+[1-9]\d{6,14}\b`),
	// Credit card (basic)
	regexp.MustCompile(`\b\d{4}[-\s]?\d{4}[-\s]?\d{4}[-\s]?\d{4}\b`),
}

const redactedValue = "[REDACTED]"
const piiValue = "[PII]"

// personalData is implemented by values that must never be logged, such
// as email addresses and phone numbers.
type personalData interface {
	IsPersonalData() bool
}

// RedactSensitive redacts sensitive field values.
func RedactSensitive(key string, value any) any {
	for _, pattern := range sensitiveKeyPatterns {
		if pattern.MatchString(key) {
			return redactedValue
		}
	}
	switch v := value.(type) {
	case personalData:
		if v.IsPersonalData() {
			return piiValue
		}
		return redactPII(fmt.Sprint(v))
	case fmt.Stringer:
		return redactPII(v.String())
	case string:
		return redactPII(v)
	}
	return value
}

// redactPII redacts PII patterns from a string.
func redactPII(s string) string {
	result := s
	for _, pattern := range piiPatterns {
		result = pattern.ReplaceAllString(result, piiValue)
	}
	return result
}

// ContainsPII checks if a string contains PII patterns.
func ContainsPII(s string) bool {
	for _, pattern := range piiPatterns {
		if pattern.MatchString(s) {
			return true
		}
	}
	return false
}

// redactFields applies redaction to all fields.
func redactFields(fields map[string]any) map[string]any {
	if len(fields) == 0 {
		return nil
	}
	result := make(map[string]any, len(fields))
	for k, v := range fields {
		result[k] = RedactSensitive(strings.TrimSpace(k), v)
	}
	return result
}
