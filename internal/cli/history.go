package cli

import (
	"os"
	"time"

	"github.com/briandowns/spinner"

	"github.com/raveheart1/nextver/internal/commit"
	"github.com/raveheart1/nextver/internal/config"
	"github.com/raveheart1/nextver/internal/errors"
	"github.com/raveheart1/nextver/internal/git"
	"github.com/raveheart1/nextver/internal/output"
	"github.com/raveheart1/nextver/internal/version"
)

// history is everything a command needs from the repository: the active
// configuration, the previous release, and the classified commits since it,
// newest first.
type history struct {
	cfg      *config.Configuration
	scheme   version.Scheme
	previous version.Version
	prevTag  string
	commits  []commit.Commit
}

// collectHistory loads configuration, opens the repository, and classifies
// the commits since the latest release tag. Flag overrides are applied on
// top of the layered config before anything touches the repository.
func collectHistory() (*history, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, errors.Wrap(err, errors.Configuration)
	}

	pf := rootCmd.PersistentFlags()
	if pf.Changed("scheme") {
		cfg.Scheme = flagScheme
	}
	if pf.Changed("tag-prefix") {
		cfg.TagPrefix = flagTagPrefix
	}
	if pf.Changed("strict") {
		cfg.Strict = flagStrict
	}

	scheme, err := cfg.VersionScheme()
	if err != nil {
		return nil, errors.InvalidScheme(cfg.Scheme)
	}

	repo, err := git.Open(flagRepo)
	if err != nil {
		return nil, errors.NotARepository(repoPath())
	}

	stop := startSpinner(" reading repository history...")
	release, err := repo.LatestRelease(scheme, cfg.TagPrefix)
	if err != nil {
		stop()
		return nil, errors.Wrap(err, errors.Repository)
	}
	raws, err := repo.CommitsSince(release)
	stop()
	if err != nil {
		return nil, errors.Wrap(err, errors.Repository)
	}

	return classify(cfg, scheme, release, raws)
}

// classify runs every raw commit through the parser, applying ignore
// patterns and strict-mode checks.
func classify(cfg *config.Configuration, scheme version.Scheme, release *git.Release, raws []commit.Raw) (*history, error) {
	h := &history{
		cfg:      cfg,
		scheme:   scheme,
		previous: version.Zero(scheme),
	}
	if release != nil {
		h.previous = release.Version
		h.prevTag = release.TagName
	}

	for _, raw := range raws {
		if commit.Ignored(raw.Message, cfg.IgnorePatterns) {
			continue
		}
		c := commit.Parse(raw)
		if cfg.Strict && !c.Conventional {
			return nil, errors.NonConventionalCommit(c.SourceID, c.Description)
		}
		h.commits = append(h.commits, c)
	}
	return h, nil
}

// startSpinner shows a spinner on stderr while the repository is walked.
// It is a no-op when stderr is not a terminal (CI, pipes).
func startSpinner(suffix string) func() {
	if !output.IsTTY() {
		return func() {}
	}
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = suffix
	s.Start()
	return s.Stop
}

func repoPath() string {
	if flagRepo != "" {
		return flagRepo
	}
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}
