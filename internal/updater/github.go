package updater

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	githubOwner = "Swatto86"
	githubRepo  = "QuickRun"

	defaultAPIBase = "https://api.github.com"

	checkTimeout = 15 * time.Second
)

// Release is the subset of the GitHub "latest release" response we care
// about. Asset order is preserved from the API; the installer selection
// heuristics depend on it.
type Release struct {
	TagName string  `json:"tag_name"`
	Body    string  `json:"body"`
	HTMLURL string  `json:"html_url"`
	Assets  []Asset `json:"assets"`
}

type Asset struct {
	Name               string `json:"name"`
	BrowserDownloadURL string `json:"browser_download_url"`
}

// ReleaseClient fetches release metadata from the GitHub API.
type ReleaseClient struct {
	http           *http.Client
	apiBase        string
	owner, repo    string
	currentVersion string
}

func NewReleaseClient(currentVersion string) *ReleaseClient {
	return &ReleaseClient{
		http:           &http.Client{Timeout: checkTimeout},
		apiBase:        defaultAPIBase,
		owner:          githubOwner,
		repo:           githubRepo,
		currentVersion: currentVersion,
	}
}

// FetchLatest queries the latest published release. A 404 means the
// repository has no releases yet; that is reported as a synthetic
// release pinned to the current version (so the check reads "up to
// date") rather than as an error.
func (c *ReleaseClient) FetchLatest(ctx context.Context) (Release, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/releases/latest", c.apiBase, c.owner, c.repo)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Release{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("User-Agent", fmt.Sprintf("QuickRun/%s", c.currentVersion))

	resp, err := c.http.Do(req)
	if err != nil {
		return Release{}, fmt.Errorf("failed to fetch release info: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return Release{
			TagName: c.currentVersion,
			HTMLURL: fmt.Sprintf("https://github.com/%s/%s/releases", c.owner, c.repo),
		}, nil
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return Release{}, fmt.Errorf("GitHub API returned error %d: %s", resp.StatusCode, string(body))
	}

	var release Release
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return Release{}, fmt.Errorf("failed to parse release JSON: %w", err)
	}

	return release, nil
}

// ReleasesPage is the canonical releases page for the product, used as
// the browser fallback target when no release metadata is at hand.
func (c *ReleaseClient) ReleasesPage() string {
	return fmt.Sprintf("https://github.com/%s/%s/releases", c.owner, c.repo)
}
