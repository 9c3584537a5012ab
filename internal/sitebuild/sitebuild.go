// Package sitebuild exports the site as static files.
package sitebuild

import (
	"context"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"

	"github.com/nfrund/amantech/internal/content"
	"github.com/nfrund/amantech/internal/rendering"
	"github.com/nfrund/amantech/web"
	"github.com/nfrund/amantech/web/src/templates/pages"
	"github.com/spf13/afero"
)

// Options configures a build.
type Options struct {
	Fs      afero.Fs
	OutDir  string
	Catalog *content.Catalog
	Year    int
}

// Build renders the pages and copies the static assets into OutDir. It
// returns the written paths, relative to OutDir. Exported pages have no live
// session; in-page links and the products link work as plain HTML.
func Build(ctx context.Context, opts Options) ([]string, error) {
	if opts.Fs == nil || opts.Catalog == nil {
		return nil, fmt.Errorf("sitebuild: filesystem and catalog are required")
	}
	renderer := rendering.NewUniversalRenderer()

	outputs := []struct {
		name string
		page any
	}{
		{"index.html", pages.Home(pages.HomeProps{Catalog: opts.Catalog, Year: opts.Year})},
		{path.Join("products", "index.html"), pages.ProductsPage(opts.Catalog, opts.Year)},
	}

	var written []string
	for _, o := range outputs {
		body, err := renderer.RenderComponent(ctx, o.page)
		if err != nil {
			return written, fmt.Errorf("failed to render %s: %w", o.name, err)
		}
		if err := writeFile(opts.Fs, opts.OutDir, o.name, body); err != nil {
			return written, err
		}
		written = append(written, o.name)
	}

	static := web.Static()
	err := fs.WalkDir(static, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := fs.ReadFile(static, p)
		if err != nil {
			return err
		}
		name := path.Join("static", p)
		if err := writeFile(opts.Fs, opts.OutDir, name, data); err != nil {
			return err
		}
		written = append(written, name)
		return nil
	})
	if err != nil {
		return written, fmt.Errorf("failed to copy static assets: %w", err)
	}
	return written, nil
}

func writeFile(afs afero.Fs, outDir, name string, data []byte) error {
	target := filepath.Join(outDir, filepath.FromSlash(name))
	if err := afs.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", name, err)
	}
	if err := afero.WriteFile(afs, target, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}
