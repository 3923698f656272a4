package settings

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	securejoin "github.com/cyphar/filepath-securejoin"

	"github.com/RucksP/slippi-launcher/internal/config"
	"github.com/RucksP/slippi-launcher/internal/ini"
	"github.com/RucksP/slippi-launcher/internal/logging"
	"github.com/RucksP/slippi-launcher/internal/system"
)

// Service provides load/modify/save access to Dolphin's settings files.
type Service struct {
	configDir string
	gameDir   string
	fs        system.FileSystem
	log       *slog.Logger
}

// NewService creates a service over the Dolphin config layout in paths,
// backed by the default filesystem.
func NewService(paths *config.Paths) *Service {
	return NewServiceWith(paths.DolphinConfigDir, paths.GameSettingsDir, system.DefaultFS())
}

// NewServiceWith creates a service with explicit roots and filesystem.
func NewServiceWith(configDir, gameDir string, filesystem system.FileSystem) *Service {
	return &Service{
		configDir: configDir,
		gameDir:   gameDir,
		fs:        filesystem,
		log:       logging.With("component", "settings"),
	}
}

// resolveFile maps a logical settings file name ("Dolphin.ini") to its path
// under the config root, refusing names that would escape it.
func (s *Service) resolveFile(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("settings file name is empty")
	}
	path, err := securejoin.SecureJoin(s.configDir, name)
	if err != nil {
		return "", fmt.Errorf("invalid settings file name %q: %w", name, err)
	}
	return path, nil
}

// resolveGame maps a game ID to its GameSettings ini path.
func (s *Service) resolveGame(gameID string) (string, error) {
	if gameID == "" {
		return "", fmt.Errorf("game id is empty")
	}
	path, err := securejoin.SecureJoin(s.gameDir, gameID+".ini")
	if err != nil {
		return "", fmt.Errorf("invalid game id %q: %w", gameID, err)
	}
	return path, nil
}

// loadPath reads a settings file into a fresh document. A missing file is
// an empty document: Dolphin creates most of these lazily and so do we.
func (s *Service) loadPath(path string) *ini.Document {
	doc := ini.NewDocument(s.log)
	data, err := s.fs.ReadFile(path)
	if err != nil {
		s.log.Debug("settings file not readable, starting empty", "path", path, "error", err)
		return doc
	}
	doc.Load(bytes.NewReader(data), true)
	return doc
}

// savePath serializes the document back to its file.
func (s *Service) savePath(path string, doc *ini.Document) error {
	if err := s.fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create settings dir: %w", err)
	}
	var buf bytes.Buffer
	doc.Save(&buf)
	if err := s.fs.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// update runs one load → mutate → save cycle against a settings file.
func (s *Service) update(path string, mutate func(doc *ini.Document)) error {
	doc := s.loadPath(path)
	mutate(doc)
	return s.savePath(path, doc)
}

// LoadFile reads a settings file by logical name.
func (s *Service) LoadFile(name string) (*ini.Document, error) {
	path, err := s.resolveFile(name)
	if err != nil {
		return nil, err
	}
	return s.loadPath(path), nil
}

// GetKey returns one value, or def when the file, section or key is absent.
func (s *Service) GetKey(file, section, key, def string) (string, error) {
	doc, err := s.LoadFile(file)
	if err != nil {
		return "", err
	}
	return doc.Get(section, key, def), nil
}

// SetKey stores one value and writes the file back.
func (s *Service) SetKey(file, section, key, value string) error {
	path, err := s.resolveFile(file)
	if err != nil {
		return err
	}
	s.log.Debug("set key", "file", file, "section", section, "key", key)
	return s.update(path, func(doc *ini.Document) {
		doc.Set(section, key, value)
	})
}

// DeleteKey removes one key and reports whether it was present.
func (s *Service) DeleteKey(file, section, key string) (bool, error) {
	path, err := s.resolveFile(file)
	if err != nil {
		return false, err
	}
	var removed bool
	err = s.update(path, func(doc *ini.Document) {
		removed = doc.DeleteKey(section, key)
	})
	return removed, err
}

// GetKeys returns a section's key order.
func (s *Service) GetKeys(file, section string) ([]string, error) {
	doc, err := s.LoadFile(file)
	if err != nil {
		return nil, err
	}
	return doc.GetKeys(section), nil
}

// GetLines returns a section's raw passthrough lines.
func (s *Service) GetLines(file, section string, stripComments bool) ([]string, error) {
	doc, err := s.LoadFile(file)
	if err != nil {
		return nil, err
	}
	return doc.GetLines(section, stripComments), nil
}

// SetLines replaces a section's raw lines and writes the file back.
func (s *Service) SetLines(file, section string, lines []string) error {
	path, err := s.resolveFile(file)
	if err != nil {
		return err
	}
	return s.update(path, func(doc *ini.Document) {
		doc.SetLines(section, lines)
	})
}

// DeleteSection removes a whole section and reports whether it existed.
func (s *Service) DeleteSection(file, section string) (bool, error) {
	path, err := s.resolveFile(file)
	if err != nil {
		return false, err
	}
	var removed bool
	err = s.update(path, func(doc *ini.Document) {
		removed = doc.DeleteSection(section)
	})
	return removed, err
}

// ListFiles returns the ini files present under the config root.
func (s *Service) ListFiles() ([]string, error) {
	entries, err := s.fs.ReadDir(s.configDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list settings dir: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".ini") {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}
