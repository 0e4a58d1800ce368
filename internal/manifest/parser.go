package manifest

import "strings"

// ParseEntry decodes a single manifest line. It reports false for blank
// lines and '#' comments.
func ParseEntry(line string) (Entry, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return Entry{}, false
	}

	fields := strings.Fields(line)
	return Entry{
		Name:       fields[0],
		Attributes: ParseAttributes(fields[1:]),
	}, true
}

// ParseAttributes decodes key=value tokens. Only the first '=' separates the
// key; a token without '=' yields the token as key with an empty value.
// Later duplicates overwrite earlier ones.
func ParseAttributes(tokens []string) Attributes {
	attrs := make(Attributes, len(tokens))
	for _, tok := range tokens {
		key, value, _ := strings.Cut(tok, "=")
		attrs[key] = value
	}
	return attrs
}

// ParseEntries decodes every entry of a manifest, in line order
func ParseEntries(lines []string) []Entry {
	entries := make([]Entry, 0, len(lines))
	for _, line := range lines {
		if e, ok := ParseEntry(line); ok {
			entries = append(entries, e)
		}
	}
	return entries
}

// ParseDirList decodes a directory list. Lines are trimmed but not filtered.
func ParseDirList(lines []string) []string {
	dirs := make([]string, len(lines))
	for i, line := range lines {
		dirs[i] = strings.TrimSpace(line)
	}
	return dirs
}
