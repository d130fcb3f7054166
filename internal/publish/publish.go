// Package publish writes generated portfolio sites to their hosting target.
// The only implementation ships files to a local directory; remote targets
// would implement the same interface.
package publish

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-builder/internal/portfolio"
)

// Publisher deploys a built site and returns the URL it is reachable at
type Publisher interface {
	Publish(ctx context.Context, site *portfolio.Site) (string, error)
}

// DirPublisher writes the site into a directory on the local filesystem and
// returns a file:// URL to the index page.
type DirPublisher struct {
	Dir string
}

// NewDirPublisher returns a publisher targeting dir
func NewDirPublisher(dir string) *DirPublisher {
	return &DirPublisher{Dir: dir}
}

// Publish writes index.html, style.css, and manifest.json concurrently.
// The directory is created if needed; existing files are overwritten.
func (p *DirPublisher) Publish(ctx context.Context, site *portfolio.Site) (string, error) {
	if err := os.MkdirAll(p.Dir, 0o755); err != nil {
		return "", &PublishError{Message: "failed to create site directory", Cause: err}
	}

	manifest, err := portfolio.BuildManifest(site.HTML)
	if err != nil {
		return "", &PublishError{Message: "failed to build site manifest", Cause: err}
	}
	manifestJSON, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return "", &PublishError{Message: "failed to marshal site manifest", Cause: err}
	}

	assets := map[string][]byte{
		"index.html":    []byte(site.HTML),
		"style.css":     []byte(site.CSS),
		"manifest.json": manifestJSON,
	}

	g, ctx := errgroup.WithContext(ctx)
	for name, data := range assets {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			path := filepath.Join(p.Dir, name)
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", name, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", &PublishError{Message: "failed to write site assets", Cause: err}
	}

	abs, err := filepath.Abs(filepath.Join(p.Dir, "index.html"))
	if err != nil {
		return "", &PublishError{Message: "failed to resolve site path", Cause: err}
	}
	return "file://" + abs, nil
}
