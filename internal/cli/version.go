package cli

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/coreyphillips/bdk-rn/internal/version"
	"github.com/coreyphillips/bdk-rn/pkg/result"
	bdkerr "github.com/coreyphillips/bdk-rn/pkg/errors"
)

const releaseCacheFile = "release.json"

// newVersionClient builds the release client, replaced in tests.
//
//nolint:gochecknoglobals // test seam
var newVersionClient = func() *version.Client { return version.NewClient() }

type versionInfo struct {
	version.Build

	Latest          string `json:"latest,omitempty"`
	UpdateAvailable bool   `json:"update_available,omitempty"`
	ReleaseURL      string `json:"release_url,omitempty"`
}

func newVersionCmd(cc *CommandContext) *cobra.Command {
	var check, noCache bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show build information",
		Long: `Show the bdk version and build information.

With --check the latest GitHub release is compared with the running
version. Releases are cached in <home>/release.json for a day; --no-cache
always asks GitHub.

Example:
  bdk version
  bdk version --check -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := versionInfo{Build: version.Current()}
			if !check {
				return emit(cc, result.Success(info), printVersion)
			}

			release, err := latestRelease(cmd, cc, noCache)
			if err != nil {
				cc.Logger.Error("version check: %v", err)
				return emit(cc, result.Failure[versionInfo](bdkerr.WithSuggestion(
					fmt.Errorf("checking for updates: %w", err),
					"check your network connection and try again",
				)), printVersion)
			}

			info.Latest = release.TagName
			info.UpdateAvailable = version.IsNewerVersion(info.Version, release.TagName)
			info.ReleaseURL = release.HTMLURL
			return emit(cc, result.Success(info), printVersion)
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "check GitHub for a newer release")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "ignore the cached release")
	return cmd
}

// latestRelease returns the cached release when fresh, otherwise fetches
// and caches it.
func latestRelease(cmd *cobra.Command, cc *CommandContext, noCache bool) (*version.Release, error) {
	cache := version.NewReleaseCache(filepath.Join(cc.Config.Home, releaseCacheFile), version.DefaultCacheTTL)
	if !noCache {
		release, ok, err := cache.Get()
		if err != nil {
			cc.Logger.Error("release cache: %v", err)
		}
		if ok {
			cc.Logger.Debug("using cached release %s", release.TagName)
			return release, nil
		}
	}

	ctx, cancel := contextWithTimeout(cmd, commandTimeout)
	defer cancel()

	release, err := newVersionClient().LatestRelease(ctx)
	if err != nil {
		return nil, err
	}
	if err := cache.Put(release); err != nil {
		cc.Logger.Error("release cache: %v", err)
	}
	return release, nil
}

func printVersion(w io.Writer, info versionInfo) error {
	outln(w, info.Build.String())
	switch {
	case info.Latest == "":
	case info.UpdateAvailable:
		out(w, "A newer version is available: %s\n", info.Latest)
		if info.ReleaseURL != "" {
			out(w, "  %s\n", info.ReleaseURL)
		}
	default:
		out(w, "You are running the latest version (%s)\n", info.Latest)
	}
	return nil
}
