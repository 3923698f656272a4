package ini

import "strings"

// codeDirectives are the line prefixes reserved for Gecko/AR code blocks.
// Lines starting with one of these bypass key/value classification entirely.
const codeDirectives = "$+*"

// parseLine classifies a single line as a key/value pair.
//
// Blank lines and "#" comments are not pairs (ok=false). Any other line is a
// pair: the text before the first "=" becomes the key and the text after it
// the value, with all whitespace removed from both and quote characters
// removed from the value. A line with no "=" yields the degenerate ("", "")
// pair, which is still a pair, and the caller will record it as one.
func parseLine(line string) (key, value string, ok bool) {
	if line == "" || line[0] == '#' {
		return "", "", false
	}

	eq := strings.IndexByte(line, '=')
	if eq < 0 {
		return "", "", true
	}

	key = stripSpace(line[:eq])
	value = stripQuotes(stripSpace(line[eq+1:]))
	return key, value, true
}

// isCodeLine reports whether the line starts with a code directive.
func isCodeLine(line string) bool {
	return line != "" && strings.IndexByte(codeDirectives, line[0]) >= 0
}

// stripSpace removes every whitespace rune, not just leading and trailing
// ones: "CPU Thread" and " CPUThread " both normalize to "CPUThread".
func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\v', '\f', '\r':
			return -1
		}
		return r
	}, s)
}

// stripQuotes removes every single and double quote character.
func stripQuotes(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\'' || r == '"' {
			return -1
		}
		return r
	}, s)
}
