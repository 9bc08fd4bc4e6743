package ideas

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Normalize recovers a JSON value from raw model text. The service is asked
// for bare JSON but routinely wraps it in markdown fences or surrounds it
// with commentary, so after fence stripping and a strict parse attempt we
// fall back to scanning for the longest parseable substring that starts at
// the first bracket.
//
// The returned value is whatever the JSON decodes to; no schema validation
// is applied beyond syntax.
func Normalize(raw string) (any, error) {
	text := stripCodeFence(raw)

	var direct any
	if err := json.Unmarshal([]byte(text), &direct); err == nil && direct != nil {
		return direct, nil
	}

	if v, ok := extractJSON(text); ok {
		return v, nil
	}
	return nil, newParseError(text)
}

// stripCodeFence removes an enclosing ``` / ```json block. The closing fence
// is located with the LAST occurrence, because the service sometimes appends
// commentary after the closing marker.
func stripCodeFence(text string) string {
	raw := strings.TrimSpace(text)
	if !strings.HasPrefix(raw, "```") {
		return raw
	}

	// Drop the opening fence line (``` or ```json).
	newlineIdx := strings.Index(raw, "\n")
	if newlineIdx == -1 {
		return raw
	}
	trimmed := raw[newlineIdx+1:]

	if closingIdx := strings.LastIndex(trimmed, "```"); closingIdx != -1 {
		trimmed = trimmed[:closingIdx]
	}
	return strings.TrimSpace(trimmed)
}

// extractJSON scans for the first '[' or '{' and then tries candidate end
// positions longest-first, strict before lenient, so the maximal well-formed
// value wins and a valid array is never truncated early.
func extractJSON(text string) (any, bool) {
	start := strings.IndexAny(text, "[{")
	if start == -1 {
		return nil, false
	}

	for j := len(text); j > start; j-- {
		candidate := text[start:j]
		var v any
		if err := json.Unmarshal([]byte(candidate), &v); err == nil {
			return v, true
		}
		if err := json.Unmarshal([]byte(escapeControlChars(candidate)), &v); err == nil {
			return v, true
		}
	}
	return nil, false
}

// escapeControlChars rewrites raw ASCII control characters that appear
// inside string literals as their escaped forms. encoding/json rejects them
// outright, but models occasionally emit literal newlines inside a
// description field; nothing else about the candidate is repaired.
func escapeControlChars(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inString := false
	escaped := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			case c < 0x20:
				switch c {
				case '\n':
					b.WriteString(`\n`)
				case '\r':
					b.WriteString(`\r`)
				case '\t':
					b.WriteString(`\t`)
				default:
					b.WriteString(fmt.Sprintf(`\u%04x`, c))
				}
				continue
			}
		} else if c == '"' {
			inString = true
		}
		b.WriteByte(c)
	}
	return b.String()
}
