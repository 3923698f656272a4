package ini

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// utf8BOM is the byte-order mark as it appears at the start of the first
// decoded line of a UTF-8 stream.
const utf8BOM = "\uFEFF"

// Document is the root object owning all sections of a configuration file,
// in the order their headers first appeared.
type Document struct {
	sections []*Section
	log      *slog.Logger
}

// NewDocument creates an empty document. The logger receives non-fatal I/O
// error reports from Load and Save; nil falls back to slog.Default().
func NewDocument(log *slog.Logger) *Document {
	if log == nil {
		log = slog.Default()
	}
	return &Document{log: log}
}

// GetSection returns the section with the given name, or nil if absent.
// Name comparison is exact.
func (d *Document) GetSection(name string) *Section {
	for _, s := range d.sections {
		if s.name == name {
			return s
		}
	}
	return nil
}

// GetOrCreateSection returns the existing section with the given name, or
// appends a new empty one. Two calls with the same name return the same
// section.
func (d *Document) GetOrCreateSection(name string) *Section {
	if s := d.GetSection(name); s != nil {
		return s
	}
	s := newSection(name)
	d.sections = append(d.sections, s)
	return s
}

// DeleteSection removes the named section and reports whether it existed.
func (d *Document) DeleteSection(name string) bool {
	for i, s := range d.sections {
		if s.name == name {
			d.sections = append(d.sections[:i], d.sections[i+1:]...)
			return true
		}
	}
	return false
}

// Exists reports whether a section with the given name is present.
func (d *Document) Exists(name string) bool {
	return d.GetSection(name) != nil
}

// Sections returns a snapshot of the sections in document order.
func (d *Document) Sections() []*Section {
	out := make([]*Section, len(d.sections))
	copy(out, d.sections)
	return out
}

// SetLines replaces the raw lines of the named section, creating the
// section if needed.
func (d *Document) SetLines(name string, lines []string) {
	d.GetOrCreateSection(name).SetLines(lines)
}

// DeleteKey removes a key from the named section. It returns false when the
// section does not exist or the key is absent.
func (d *Document) DeleteKey(name, key string) bool {
	s := d.GetSection(name)
	if s == nil {
		return false
	}
	return s.Delete(key)
}

// GetKeys returns the key order of the named section, or an empty slice if
// the section is absent.
func (d *Document) GetKeys(name string) []string {
	s := d.GetSection(name)
	if s == nil {
		return []string{}
	}
	return s.Keys()
}

// Get returns the value stored under key in the named section, or def when
// either is absent.
func (d *Document) Get(name, key, def string) string {
	s := d.GetSection(name)
	if s == nil {
		return def
	}
	return s.Get(key, def)
}

// Set stores a value in the named section, creating the section if needed.
func (d *Document) Set(name, key, value string) {
	d.GetOrCreateSection(name).Set(key, value)
}

// GetLines returns the named section's raw lines, filtered of empty
// entries. stripComments is passed through and currently has no effect.
func (d *Document) GetLines(name string, stripComments bool) []string {
	s := d.GetSection(name)
	if s == nil {
		return []string{}
	}
	return s.GetLines(stripComments)
}

// Reset discards all sections.
func (d *Document) Reset() {
	d.sections = nil
}

// Load reads a configuration stream line by line and merges it into the
// document. With keepCurrentData=false the document is cleared first;
// otherwise sections and keys named in the stream overwrite matching
// entries and everything else is left alone.
//
// Lines before the first section header, and headers missing their closing
// bracket, are silently ignored. Read errors are logged and do not discard
// what was parsed before them; the return value only signals that the pass
// ran to completion.
func (d *Document) Load(r io.Reader, keepCurrentData bool) bool {
	if !keepCurrentData {
		d.Reset()
	}

	var current *Section
	scanner := bufio.NewScanner(r)
	first := true

	for scanner.Scan() {
		line := scanner.Text()
		if first {
			line = strings.TrimPrefix(line, utf8BOM)
			first = false
		}

		if strings.HasPrefix(line, "[") {
			if end := strings.IndexByte(line, ']'); end >= 0 {
				current = d.GetOrCreateSection(line[1:end])
			}
			continue
		}

		if current == nil {
			continue
		}

		key, value, ok := parseLine(line)
		switch {
		case !ok:
			current.appendLine(line)
		case isCodeLine(line):
			// Code directives look like pairs often enough ("$Code
			// [author]" contains no "=", "+$Code=x" might) but must stay
			// verbatim no matter what the classifier found.
			current.appendLine(line)
		default:
			current.Set(key, value)
		}
	}

	if err := scanner.Err(); err != nil {
		d.log.Error("config read failed mid-stream", "error", err)
	}
	return true
}

// Save writes every section in document order. Each section gets its
// "[name]" header, then either its raw lines (when it holds no keys) or its
// key=value pairs, then one blank separator line. Headers are written even
// for empty sections so fixed sections stay visible in the file.
//
// A section holding both keys and raw lines loses the raw lines; see the
// package comment. Write errors are logged, never returned.
func (d *Document) Save(w io.Writer) bool {
	bw := bufio.NewWriter(w)

	for _, s := range d.sections {
		fmt.Fprintf(bw, "[%s]\n", s.name)
		if len(s.keyOrder) == 0 {
			for _, line := range s.rawLines {
				fmt.Fprintf(bw, "%s\n", line)
			}
		} else {
			for _, key := range s.keyOrder {
				fmt.Fprintf(bw, "%s=%s\n", key, s.values[key])
			}
		}
		fmt.Fprintln(bw)
	}

	if err := bw.Flush(); err != nil {
		d.log.Error("config write failed", "error", err)
	}
	return true
}
