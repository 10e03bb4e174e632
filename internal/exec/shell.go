package exec

import "strings"

// ShellEscapePosix returns a single shell token using single-quote strategy,
// including surrounding single quotes.
// example: abc -> 'abc'
// example: a'b -> 'a'"'"'b'
// example: "" -> ''
func ShellEscapePosix(s string) string {
	if s == "" {
		return "''"
	}
	escaped := strings.ReplaceAll(s, "'", "'\"'\"'")
	return "'" + escaped + "'"
}

// QuoteArg returns s unchanged when it is safe to paste into a POSIX shell,
// and ShellEscapePosix(s) otherwise.
func QuoteArg(s string) string {
	if s == "" {
		return "''"
	}
	for _, r := range s {
		if !isSafeShellRune(r) {
			return ShellEscapePosix(s)
		}
	}
	return s
}

func isSafeShellRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	}
	return strings.ContainsRune("-_./:@%+=,", r)
}

// FormatCommandLine joins argv into a line a user can copy into a shell.
func FormatCommandLine(argv []string) string {
	quoted := make([]string, len(argv))
	for i, a := range argv {
		quoted[i] = QuoteArg(a)
	}
	return strings.Join(quoted, " ")
}
