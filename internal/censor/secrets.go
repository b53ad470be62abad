package censor

import (
	"regexp"
	"unicode/utf8"
)

// secretPatterns are regex heuristics for common secret types.
var secretPatterns = []*regexp.Regexp{
	// Generic API keys (long hex/base64 strings after common key patterns)
	regexp.MustCompile(`(?i)(api[_-]?key|apikey|api[_-]?secret)\s*[:=]\s*["']?([A-Za-z0-9/+=_-]{20,})["']?`),
	// AWS access key IDs
	regexp.MustCompile(`AKIA[0-9A-Z]{16}`),
	// AWS secret access keys
	regexp.MustCompile(`(?i)(aws[_-]?secret[_-]?access[_-]?key)\s*[:=]\s*["']?([A-Za-z0-9/+=]{40})["']?`),
	// Generic secrets/tokens/passwords in assignments
	regexp.MustCompile(`(?i)(secret|token|password|passwd|credential)\s*[:=]\s*["']([^"']{8,})["']`),
	// Bearer tokens
	regexp.MustCompile(`(?i)Bearer\s+([A-Za-z0-9._-]{20,})`),
	// JWTs
	regexp.MustCompile(`eyJ[A-Za-z0-9_-]{10,}\.eyJ[A-Za-z0-9_-]{10,}\.[A-Za-z0-9_-]{10,}`),
	// Private key blocks
	regexp.MustCompile(`-----BEGIN\s+(?:RSA\s+)?PRIVATE KEY-----`),
	// GitHub tokens
	regexp.MustCompile(`gh[pousr]_[A-Za-z0-9_]{36,}`),
	// Slack tokens
	regexp.MustCompile(`xox[bporas]-[A-Za-z0-9-]{10,}`),
	// Anthropic API keys
	regexp.MustCompile(`sk-ant-[A-Za-z0-9_-]{20,}`),
	// OpenAI API keys
	regexp.MustCompile(`sk-[A-Za-z0-9]{20,}`),
}

// FindSecrets returns the rune ranges of text that look like secrets. When a
// pattern captures the secret value separately from its key name, only the
// value is reported so the surrounding code stays readable.
func FindSecrets(text string) []Range {
	var s Set
	for _, pat := range secretPatterns {
		for _, m := range pat.FindAllStringSubmatchIndex(text, -1) {
			lo, hi := m[0], m[1]
			if last := len(m) - 2; last >= 2 && m[last] >= 0 {
				lo, hi = m[last], m[last+1]
			}
			s.Add(Range{
				Start: utf8.RuneCountInString(text[:lo]),
				End:   utf8.RuneCountInString(text[:hi]),
			})
		}
	}
	return s.Ranges()
}
