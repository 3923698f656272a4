// Package ini implements the line-oriented configuration codec used for
// Dolphin-style settings files.
//
// # File Format
//
// Files are a flat sequence of sections:
//
//	[Core]
//	# comment
//	CPUThread = True
//	[Gecko_Enabled]
//	$Faster Melee Netplay Settings
//
// A section header is everything between the first "[" and the first
// following "]" on a line. Inside a section, lines containing "=" become
// key/value pairs: whitespace is removed from both sides of the "=", and
// quote characters (' and ") are removed from the value. Blank lines, "#"
// comments, and lines starting with the code directives "$", "+", or "*"
// are preserved verbatim as raw passthrough, in order, even when they
// happen to contain an "=".
//
// # Ordering
//
// Sections keep the order in which their headers first appear, and keys keep
// insertion order within a section, so repeated load/modify/save cycles on a
// hand-edited file stay predictable.
//
// # Known Lossy Edge Case
//
// On save, a section is written either as key=value pairs or as its raw
// lines, never both. A section holding both (a comment above a key, say)
// drops its raw lines from the output. Downstream tooling relies on this, so
// the behavior is kept rather than fixed.
//
// # Error Handling
//
// Load and Save never fail: I/O errors are reported to the injected logger
// and the boolean result only says the pass ran to completion. A read error
// mid-stream keeps everything parsed before it.
//
// Documents are not safe for concurrent use; callers serialize access.
package ini
