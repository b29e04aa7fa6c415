package discord

import (
	"strconv"
	"strings"
	"unicode"
)

// ParseOpenRequest splits a free-text opening request into a container name
// and a count. The count may lead ("5 梦魇武器箱"), trail as its own token
// ("梦魇武器箱 5") or be glued to the name ("梦魇武器箱5"). Absent or
// non-positive counts default to 1.
func ParseOpenRequest(text string) (string, int) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", 1
	}

	fields := strings.Fields(text)

	if len(fields) > 1 {
		if n, err := strconv.Atoi(fields[0]); err == nil {
			return strings.Join(fields[1:], " "), clampCount(n)
		}
		last := fields[len(fields)-1]
		if n, err := strconv.Atoi(last); err == nil {
			return strings.Join(fields[:len(fields)-1], " "), clampCount(n)
		}
	}

	// Single token, or no standalone number: peel trailing digits off the name
	name := strings.Join(fields, " ")
	trimmed := strings.TrimRightFunc(name, unicode.IsDigit)
	if suffix := name[len(trimmed):]; suffix != "" && trimmed != "" {
		if n, err := strconv.Atoi(suffix); err == nil {
			return strings.TrimSpace(trimmed), clampCount(n)
		}
	}

	return name, 1
}

func clampCount(n int) int {
	if n < 1 {
		return 1
	}
	return n
}
