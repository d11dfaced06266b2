package updater

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Swatto86/QuickRun/internal/debug"
	"github.com/Swatto86/QuickRun/internal/runner"
)

const (
	downloadTimeout = 300 * time.Second

	// Used when the download URL has no usable final path segment.
	fallbackInstallerName = "quickrun-setup.exe"
)

// UpdateInfo is the user-facing summary of an update check, built fresh
// on every check and handed to the frontend as-is.
type UpdateInfo struct {
	Available      bool   `json:"available"`
	Version        string `json:"version"`
	Body           string `json:"body"`
	CurrentVersion string `json:"currentVersion"`
	ReleaseURL     string `json:"releaseUrl"`
	InstallerURL   string `json:"installerUrl,omitempty"`
}

// Updater answers "is a newer release out" and drives the download and
// launch of its installer. openURL is the browser fallback (the Wails
// runtime on the real app); spawn launches the downloaded installer.
type Updater struct {
	client         *ReleaseClient
	download       *http.Client
	currentVersion string
	openURL        func(url string) error
	spawn          func(path string) error
}

func New(currentVersion string, openURL func(url string) error) *Updater {
	return &Updater{
		client:         NewReleaseClient(currentVersion),
		download:       &http.Client{Timeout: downloadTimeout},
		currentVersion: currentVersion,
		openURL:        openURL,
		spawn:          runner.Spawn,
	}
}

// Check fetches the latest release and reduces it to an UpdateInfo.
// "No releases published" is not an error; transport and parse failures
// are.
func (u *Updater) Check(ctx context.Context) (UpdateInfo, error) {
	release, err := u.client.FetchLatest(ctx)
	if err != nil {
		return UpdateInfo{}, err
	}

	latest := stripTagPrefix(release.TagName)
	available := compareVersions(latest, u.currentVersion) > 0

	debug.Get().Info("update check complete", map[string]interface{}{
		"current":   u.currentVersion,
		"latest":    latest,
		"available": available,
	})

	return UpdateInfo{
		Available:      available,
		Version:        latest,
		Body:           release.Body,
		CurrentVersion: u.currentVersion,
		ReleaseURL:     release.HTMLURL,
		InstallerURL:   FindInstallerAsset(release.Assets),
	}, nil
}

// Install downloads the installer named by info and launches it
// detached; the app is expected to quit shortly after so the installer
// can replace its files. Any failure on the installer path falls through
// to opening the release page in the default browser — one fallback, no
// retries.
func (u *Updater) Install(ctx context.Context, info UpdateInfo) error {
	log := debug.Get()

	if info.InstallerURL != "" {
		path, err := u.downloadInstaller(ctx, info.InstallerURL)
		if err == nil {
			if err = u.spawn(path); err == nil {
				log.Info("installer launched", map[string]interface{}{"path": path})
				return nil
			}
		}
		log.Error("installer path failed, falling back to browser", map[string]interface{}{
			"error": err.Error(),
		})
	}

	releaseURL := info.ReleaseURL
	if releaseURL == "" {
		releaseURL = u.client.ReleasesPage()
	}

	if err := u.openURL(releaseURL); err != nil {
		return fmt.Errorf("failed to open release page: %v", err)
	}
	return nil
}

// downloadInstaller fetches the installer into the OS temp directory and
// returns its path. The file is named after the URL's final segment. A
// partial download is removed so a failed attempt never leaves a file
// that looks complete.
func (u *Updater) downloadInstaller(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create download request: %w", err)
	}
	req.Header.Set("User-Agent", fmt.Sprintf("QuickRun/%s", u.currentVersion))

	resp, err := u.download.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to start download: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("download failed with status %d", resp.StatusCode)
	}

	path := filepath.Join(os.TempDir(), installerFileName(url))
	out, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create installer file: %w", err)
	}

	written, err := io.Copy(out, resp.Body)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to write installer: %w", err)
	}

	debug.Get().Info("installer downloaded", map[string]interface{}{
		"path":  path,
		"bytes": written,
	})
	return path, nil
}

func installerFileName(url string) string {
	segments := strings.Split(url, "/")
	name := segments[len(segments)-1]
	if name == "" {
		return fallbackInstallerName
	}
	return name
}
