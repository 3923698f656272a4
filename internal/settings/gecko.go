package settings

import (
	"fmt"
	"strings"

	"github.com/RucksP/slippi-launcher/internal/ini"
)

// Gecko code sections inside a per-game settings file.
const (
	SectionGecko        = "Gecko"
	SectionGeckoEnabled = "Gecko_Enabled"
)

// GeckoCode is one code from a game's [Gecko] section: a "$Name" line and
// any "*" note lines that followed it. The hex body lines between them do
// not survive the ini codec (a line without "=" collapses into a degenerate
// pair), so codes carry names and notes only.
type GeckoCode struct {
	Name    string
	Notes   []string
	Enabled bool
}

// parseGeckoCodes decodes the raw lines of [Gecko] and marks each code
// enabled when its name appears in [Gecko_Enabled].
func parseGeckoCodes(doc *ini.Document) []GeckoCode {
	enabled := make(map[string]bool)
	for _, line := range doc.GetLines(SectionGeckoEnabled, false) {
		if strings.HasPrefix(line, "$") {
			enabled[strings.TrimPrefix(line, "$")] = true
		}
	}

	var codes []GeckoCode
	var current *GeckoCode
	for _, line := range doc.GetLines(SectionGecko, false) {
		switch {
		case strings.HasPrefix(line, "$"):
			name := strings.TrimPrefix(line, "$")
			codes = append(codes, GeckoCode{Name: name, Enabled: enabled[name]})
			current = &codes[len(codes)-1]
		case current == nil:
			// Note lines before any $ header have no owner; skip them.
		case strings.HasPrefix(line, "*"):
			current.Notes = append(current.Notes, strings.TrimPrefix(line, "*"))
		}
	}
	return codes
}

// ListCodes returns the gecko codes defined for a game, with their enabled
// state.
func (s *Service) ListCodes(gameID string) ([]GeckoCode, error) {
	path, err := s.resolveGame(gameID)
	if err != nil {
		return nil, err
	}
	return parseGeckoCodes(s.loadPath(path)), nil
}

// SetCodeEnabled enables or disables one gecko code by rewriting the
// game's [Gecko_Enabled] raw lines. The code must exist in [Gecko].
func (s *Service) SetCodeEnabled(gameID, name string, enable bool) error {
	path, err := s.resolveGame(gameID)
	if err != nil {
		return err
	}

	doc := s.loadPath(path)
	codes := parseGeckoCodes(doc)

	found := false
	var lines []string
	for _, code := range codes {
		if code.Name == name {
			found = true
			code.Enabled = enable
		}
		if code.Enabled {
			lines = append(lines, "$"+code.Name)
		}
	}
	if !found {
		return fmt.Errorf("unknown gecko code %q for game %s", name, gameID)
	}

	doc.SetLines(SectionGeckoEnabled, lines)
	s.log.Debug("gecko code toggled", "game", gameID, "code", name, "enabled", enable)
	return s.savePath(path, doc)
}
