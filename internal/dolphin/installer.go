package dolphin

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	securejoin "github.com/cyphar/filepath-securejoin"

	"github.com/RucksP/slippi-launcher/internal/logging"
)

// versionFile marks which build is installed.
const versionFile = "version"

// Installer downloads and unpacks emulator builds.
type Installer struct {
	installDir string
	client     *http.Client
	log        *slog.Logger
}

// NewInstaller creates an installer targeting installDir.
func NewInstaller(installDir string) *Installer {
	return &Installer{
		installDir: installDir,
		client:     &http.Client{Timeout: 10 * time.Minute},
		log:        logging.With("component", "installer"),
	}
}

// InstalledVersion returns the version marker of the current build, or ""
// when nothing is installed.
func (i *Installer) InstalledVersion() string {
	data, err := os.ReadFile(filepath.Join(i.installDir, versionFile))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// IsInstalled reports whether a build is present.
func (i *Installer) IsInstalled() bool {
	return i.InstalledVersion() != ""
}

// Install downloads the archive at url and unpacks it into the install
// directory, then records version. The download is staged through a temp
// file so a failed transfer never corrupts an existing install.
func (i *Installer) Install(ctx context.Context, url, version string) error {
	i.log.Info("downloading dolphin build", "url", url, "version", version)

	archive, err := i.download(ctx, url)
	if err != nil {
		return err
	}
	defer os.Remove(archive)

	if err := os.MkdirAll(i.installDir, 0o755); err != nil {
		return fmt.Errorf("failed to create install dir: %w", err)
	}
	if err := i.extract(archive); err != nil {
		return err
	}

	if err := os.WriteFile(filepath.Join(i.installDir, versionFile), []byte(version+"\n"), 0o644); err != nil {
		return fmt.Errorf("failed to record version: %w", err)
	}

	i.log.Info("dolphin build installed", "version", version)
	return nil
}

// download fetches url into a temp file and returns its path.
func (i *Installer) download(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("invalid download url: %w", err)
	}

	resp, err := i.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("download failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("download failed: unexpected status %s", resp.Status)
	}

	tmp, err := os.CreateTemp("", "dolphin-*.zip")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("download interrupted: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("failed to finish download: %w", err)
	}
	return tmp.Name(), nil
}

// extract unpacks a zip archive into the install directory. Entry names are
// joined with securejoin so a crafted archive cannot write outside it.
func (i *Installer) extract(archive string) error {
	r, err := zip.OpenReader(archive)
	if err != nil {
		return fmt.Errorf("failed to open archive: %w", err)
	}
	defer r.Close()

	for _, f := range r.File {
		dest, err := securejoin.SecureJoin(i.installDir, f.Name)
		if err != nil {
			return fmt.Errorf("refusing archive entry %q: %w", f.Name, err)
		}

		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(dest, 0o755); err != nil {
				return fmt.Errorf("failed to create %s: %w", dest, err)
			}
			continue
		}

		if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", filepath.Dir(dest), err)
		}
		if err := extractFile(f, dest); err != nil {
			return err
		}
	}
	return nil
}

func extractFile(f *zip.File, dest string) error {
	rc, err := f.Open()
	if err != nil {
		return fmt.Errorf("failed to read archive entry %q: %w", f.Name, err)
	}
	defer rc.Close()

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, f.Mode())
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dest, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, rc); err != nil {
		return fmt.Errorf("failed to extract %s: %w", dest, err)
	}
	return nil
}
