// Package envfile implements the KEY=VALUE env text interchange format
// used for import, export, and shell sync rendering.
package envfile

import "strings"

// Entry is one key/value pair decoded from env text.
type Entry struct {
	Key   string
	Value string
}

// Parse decodes env text line by line, in order. Blank lines and lines
// starting with '#' are skipped, as are lines without '=' and entries whose
// key trims to empty. Splitting happens at the first '=' only.
//
// The value has one leading and one trailing double quote stripped, then
// one leading and one trailing single quote, each side independently. The
// two passes are deliberately not matched as pairs: '"abc' decodes to "abc.
func Parse(text string) []Entry {
	var entries []Entry
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}

		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		value = stripQuotes(strings.TrimSpace(value))

		entries = append(entries, Entry{Key: key, Value: value})
	}
	return entries
}

// Quote renders a value in double quotes with embedded double quotes
// escaped as \". Nothing else is escaped; the output is a shell-source
// line, not a general-purpose serialization.
func Quote(value string) string {
	return `"` + strings.ReplaceAll(value, `"`, `\"`) + `"`
}

// Encode renders entries as KEY="VALUE" lines joined by single newlines,
// with no trailing newline. Entries are emitted in the order given.
func Encode(entries []Entry) string {
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, e.Key+"="+Quote(e.Value))
	}
	return strings.Join(lines, "\n")
}

// ExportStatement renders one shell export line for a secret, sharing the
// Quote escaping rule with Encode.
func ExportStatement(key, value string) string {
	return "export " + key + "=" + Quote(value)
}

func stripQuotes(v string) string {
	v = trimOne(v, '"')
	return trimOne(v, '\'')
}

// trimOne removes at most one leading and one trailing q, independently.
func trimOne(v string, q byte) string {
	if len(v) > 0 && v[0] == q {
		v = v[1:]
	}
	if len(v) > 0 && v[len(v)-1] == q {
		v = v[:len(v)-1]
	}
	return v
}
