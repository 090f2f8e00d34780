// Package version reports build information and checks GitHub for newer
// releases of the bdk CLI.
package version

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"runtime"
	"strings"
	"time"

	"golang.org/x/mod/semver"
)

// Build information, set with -ldflags "-X".
//
//nolint:gochecknoglobals // populated by the linker
var (
	Version = "dev"
	Commit  = ""
	Date    = ""
)

// Release repository.
const (
	Owner = "coreyphillips"
	Repo  = "bdk-rn"
)

// Default configuration constants
const (
	DefaultBaseURL      = "https://api.github.com"
	DefaultTimeout      = 10 * time.Second
	maxErrorBodySize    = 1024
	maxResponseBodySize = 64 * 1024
)

// ErrGitHubAPIFailed is returned for non-200 release API responses.
var ErrGitHubAPIFailed = errors.New("GitHub API request failed")

// Build describes the running binary.
type Build struct {
	Version   string `json:"version"`
	Commit    string `json:"commit,omitempty"`
	Date      string `json:"date,omitempty"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// Current returns the build information of the running binary.
func Current() Build {
	return Build{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String renders build info on one line.
func (b Build) String() string {
	s := "bdk " + b.Version
	if b.Commit != "" {
		s += " (" + b.Commit + ")"
	}
	return s + " " + b.GoVersion + " " + b.Platform
}

// Release is the subset of a GitHub release the CLI uses.
type Release struct {
	TagName     string    `json:"tag_name"`
	Name        string    `json:"name"`
	Prerelease  bool      `json:"prerelease"`
	PublishedAt time.Time `json:"published_at"`
	HTMLURL     string    `json:"html_url"`
}

// Client fetches releases from the GitHub API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
	retry      RetryConfig
}

// Option configures a Client
type Option func(*Client)

// WithBaseURL sets a custom base URL for the GitHub API
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(url, "/")
	}
}

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// NewClient creates a new Client with the given options
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: DefaultTimeout},
		userAgent:  fmt.Sprintf("bdk/%s (%s/%s)", Version, runtime.GOOS, runtime.GOARCH),
		retry:      DefaultRetryConfig(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// LatestRelease fetches the latest published release. Rate limiting and
// server errors are retried.
func (c *Client) LatestRelease(ctx context.Context) (*Release, error) {
	return withRetry(ctx, c.retry, func() (*Release, error) {
		return c.latestRelease(ctx)
	})
}

func (c *Client) latestRelease(ctx context.Context) (*Release, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/releases/latest", c.baseURL, Owner, Repo)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/vnd.github.v3+json")

	resp, err := c.httpClient.Do(req) //nolint:gosec // URL is built from constants
	if err != nil {
		return nil, fmt.Errorf("fetching release: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		err := fmt.Errorf("%w: status %d: %s", ErrGitHubAPIFailed, resp.StatusCode, strings.TrimSpace(string(body)))
		if isTransientStatus(resp.StatusCode) {
			return nil, &transientError{err: err, after: parseRetryAfter(resp.Header.Get("Retry-After"))}
		}
		return nil, err
	}

	var release Release
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBodySize)).Decode(&release); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	return &release, nil
}

// Canonical returns v as a "vMAJOR.MINOR.PATCH" semver string, or "" when
// v is not a release version (for example "dev" or a commit hash).
func Canonical(v string) string {
	v = strings.TrimSpace(v)
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return semver.Canonical(v)
}

// CompareVersions returns 1 if v1 > v2, -1 if v1 < v2 and 0 otherwise.
// Non-release versions sort before every release.
func CompareVersions(v1, v2 string) int {
	c1, c2 := Canonical(v1), Canonical(v2)
	switch {
	case c1 == "" && c2 == "":
		return 0
	case c1 == "":
		return -1
	case c2 == "":
		return 1
	default:
		return semver.Compare(c1, c2)
	}
}

// IsNewerVersion checks if latest is newer than current.
func IsNewerVersion(current, latest string) bool {
	return CompareVersions(latest, current) > 0
}
