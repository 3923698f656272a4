package testutil

import (
	"embed"
	"os"
	"path/filepath"
	"testing"

	"github.com/RucksP/slippi-launcher/internal/config"
)

//go:embed fixtures/*.ini
var fixturesFS embed.FS

// Fixture loads an embedded ini fixture by name.
func Fixture(name string) ([]byte, error) {
	return fixturesFS.ReadFile("fixtures/" + name)
}

// MustFixture loads an embedded ini fixture or fails the test.
func MustFixture(t *testing.T, name string) []byte {
	t.Helper()
	data, err := Fixture(name)
	if err != nil {
		t.Fatalf("failed to load fixture %s: %v", name, err)
	}
	return data
}

// InstallHome builds a launcher home in a fresh temp dir with the fixture
// settings files unpacked into Dolphin's config layout.
func InstallHome(t *testing.T) *config.Paths {
	t.Helper()

	paths := config.PathsAt(t.TempDir())
	for _, dir := range []string{
		paths.DolphinConfigDir,
		paths.GameSettingsDir,
		paths.EventsDir,
	} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("failed to create %s: %v", dir, err)
		}
	}

	install := func(name, dir string) {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, MustFixture(t, name), 0o644); err != nil {
			t.Fatalf("failed to write fixture %s: %v", path, err)
		}
	}
	install("Dolphin.ini", paths.DolphinConfigDir)
	install("GALE01.ini", paths.GameSettingsDir)

	return paths
}
