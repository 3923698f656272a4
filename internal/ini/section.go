package ini

// Section is a named group of key/value pairs and raw passthrough lines.
//
// keyOrder and values are kept in lock-step by the mutation methods; the set
// of keys in values always equals the entries of keyOrder. rawLines is
// independent of both and holds lines preserved verbatim by the loader.
type Section struct {
	name     string
	keyOrder []string
	values   map[string]string
	rawLines []string
}

// newSection creates an empty section. Sections are only created through
// Document.GetOrCreateSection, which keeps names unique per document.
func newSection(name string) *Section {
	return &Section{
		name:   name,
		values: make(map[string]string),
	}
}

// Name returns the section's name, fixed at creation.
func (s *Section) Name() string {
	return s.name
}

// Set stores value under key. A new key is appended to the key order; an
// existing key keeps its original position and only its value changes.
func (s *Section) Set(key, value string) {
	if _, exists := s.values[key]; !exists {
		s.keyOrder = append(s.keyOrder, key)
	}
	s.values[key] = value
}

// Get returns the value stored under key, or def if the key is absent.
func (s *Section) Get(key, def string) string {
	if v, ok := s.values[key]; ok {
		return v
	}
	return def
}

// Exists reports whether key is present.
func (s *Section) Exists(key string) bool {
	_, ok := s.values[key]
	return ok
}

// Delete removes key from both the value map and the key order. It reports
// whether a removal occurred; deleting an absent key is a no-op.
func (s *Section) Delete(key string) bool {
	if _, ok := s.values[key]; !ok {
		return false
	}
	delete(s.values, key)
	for i, k := range s.keyOrder {
		if k == key {
			s.keyOrder = append(s.keyOrder[:i], s.keyOrder[i+1:]...)
			break
		}
	}
	return true
}

// Keys returns a snapshot of the key order.
func (s *Section) Keys() []string {
	keys := make([]string, len(s.keyOrder))
	copy(keys, s.keyOrder)
	return keys
}

// SetLines replaces the section's raw lines wholesale. Key/value state is
// untouched.
func (s *Section) SetLines(lines []string) {
	s.rawLines = make([]string, len(lines))
	copy(s.rawLines, lines)
}

// GetLines returns the raw lines, dropping entries that are empty or a lone
// newline. stripComments is accepted for interface stability but has no
// effect on the returned content.
func (s *Section) GetLines(stripComments bool) []string {
	_ = stripComments
	lines := make([]string, 0, len(s.rawLines))
	for _, line := range s.rawLines {
		if line == "" || line == "\n" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// appendLine records one raw passthrough line during load.
func (s *Section) appendLine(line string) {
	s.rawLines = append(s.rawLines, line)
}
