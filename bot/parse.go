package bot

import "strings"

// ParseQuery splits a free-text query of the form
// "<origin city> to <destination city> on <date>". Anything that does not
// match yields ok=false with all fields empty.
func ParseQuery(text string) (origin, destination, date string, ok bool) {
	lower := strings.ToLower(text)

	parts := strings.SplitN(lower, " to ", 2)
	if len(parts) != 2 {
		return "", "", "", false
	}

	rest := strings.SplitN(parts[1], " on ", 2)
	if len(rest) != 2 {
		return "", "", "", false
	}

	origin = titleCase(strings.TrimSpace(parts[0]))
	destination = titleCase(strings.TrimSpace(rest[0]))
	date = strings.TrimSpace(rest[1])

	if origin == "" || destination == "" || date == "" {
		return "", "", "", false
	}

	return origin, destination, date, true
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
