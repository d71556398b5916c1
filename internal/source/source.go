// Package source materializes the documented source tree locally. A
// configured git URL is cloned into a temporary workspace so example file
// references resolve the same way they do for a local tree.
package source

import (
	"context"
	"log/slog"
	"os"

	git "github.com/go-git/go-git/v5"

	cderrors "git.home.luguber.info/inful/codedoc/internal/errors"
	"git.home.luguber.info/inful/codedoc/internal/logfields"
)

// Fetch clones url into a fresh temporary directory and returns its path
// together with a cleanup function. Shallow history is enough; examples
// only need the working tree.
func Fetch(ctx context.Context, url string) (string, func(), error) {
	dir, err := os.MkdirTemp("", "codedoc-src-*")
	if err != nil {
		return "", nil, cderrors.SourceFetchFailed(url, err)
	}
	cleanup := func() {
		if rmErr := os.RemoveAll(dir); rmErr != nil {
			slog.Warn("source workspace cleanup failed", logfields.Dir(dir), logfields.Error(rmErr))
		}
	}

	cloneOptions := &git.CloneOptions{
		URL:          url,
		Depth:        1,
		SingleBranch: true,
	}
	if _, err := git.PlainCloneContext(ctx, dir, false, cloneOptions); err != nil {
		cleanup()
		return "", nil, cderrors.SourceFetchFailed(url, err)
	}

	slog.Info("source tree fetched", logfields.Dir(dir))
	return dir, cleanup, nil
}

// Resolve returns the directory examples are read from: the local source
// root, or a clone of gitURL when one is configured.
func Resolve(ctx context.Context, localRoot, gitURL string) (string, func(), error) {
	if gitURL == "" {
		return localRoot, func() {}, nil
	}
	return Fetch(ctx, gitURL)
}
