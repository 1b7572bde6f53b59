// Package export pre-renders the site into a directory of static files.
package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/gt-examples/apartment-listings/internal/platform/i18n"
	"github.com/gt-examples/apartment-listings/internal/services/web/routepath"
	"github.com/gt-examples/apartment-listings/internal/services/web/static"
)

const (
	indexFile    = "index.html"
	notFoundFile = "404.html"
	staticDir    = "static"
	// defaultConcurrency bounds in-flight renders.
	defaultConcurrency = 4
)

// Options tune an export run.
type Options struct {
	Concurrency int
	Logger      *slog.Logger
}

// Paths lists the index and every apartment detail page for each locale.
func Paths(locales []string, slugs []string) []string {
	paths := make([]string, 0, len(locales)*(len(slugs)+1))
	for _, locale := range locales {
		locale = strings.TrimSpace(locale)
		if locale == "" {
			continue
		}
		paths = append(paths, routepath.Index(locale))
		for _, slug := range slugs {
			paths = append(paths, routepath.Apartment(locale, slug))
		}
	}
	return paths
}

// Write renders each path through handler into <outDir>/<path>/index.html.
func Write(ctx context.Context, handler http.Handler, outDir string, paths []string) error {
	return WriteWithOptions(ctx, handler, outDir, paths, Options{})
}

// WriteWithOptions is Write with explicit options.
func WriteWithOptions(ctx context.Context, handler http.Handler, outDir string, paths []string, opts Options) error {
	if handler == nil {
		return errors.New("handler is required")
	}
	outDir = strings.TrimSpace(outDir)
	if outDir == "" {
		return errors.New("output directory is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	limit := opts.Concurrency
	if limit <= 0 {
		limit = defaultConcurrency
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for _, pagePath := range paths {
		g.Go(func() error {
			target, err := pageFile(outDir, pagePath)
			if err != nil {
				return err
			}
			body, err := render(ctx, handler, pagePath, http.StatusOK)
			if err != nil {
				return err
			}
			if err := writeFile(target, body); err != nil {
				return err
			}
			logger.Debug("exported page", "path", pagePath, "file", target)
			return nil
		})
	}
	return g.Wait()
}

// Site exports every page, the static assets and a not-found page.
func Site(ctx context.Context, handler http.Handler, outDir string, locales []string, slugs []string, opts Options) error {
	paths := Paths(locales, slugs)
	if err := WriteWithOptions(ctx, handler, outDir, paths, opts); err != nil {
		return err
	}
	if err := WriteStatic(outDir); err != nil {
		return err
	}
	if err := WriteNotFound(ctx, handler, outDir); err != nil {
		return err
	}
	if opts.Logger != nil {
		opts.Logger.Info("export complete", "dir", outDir, "pages", len(paths))
	}
	return nil
}

// WriteStatic copies the embedded assets into <outDir>/static.
func WriteStatic(outDir string) error {
	root := filepath.Join(outDir, staticDir)
	return fs.WalkDir(static.FS, ".", func(name string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}
		data, err := fs.ReadFile(static.FS, name)
		if err != nil {
			return fmt.Errorf("read static %s: %w", name, err)
		}
		return writeFile(filepath.Join(root, filepath.FromSlash(name)), data)
	})
}

// WriteNotFound renders the default-locale not-found page to <outDir>/404.html.
func WriteNotFound(ctx context.Context, handler http.Handler, outDir string) error {
	if handler == nil {
		return errors.New("handler is required")
	}
	body, err := render(ctx, handler, "/"+i18n.DefaultLocale+"/404", http.StatusNotFound)
	if err != nil {
		return err
	}
	return writeFile(filepath.Join(outDir, notFoundFile), body)
}

func render(ctx context.Context, handler http.Handler, pagePath string, wantStatus int) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pagePath, nil)
	if err != nil {
		return nil, fmt.Errorf("build request %s: %w", pagePath, err)
	}
	rec := newResponseBuffer()
	handler.ServeHTTP(rec, req)
	if rec.statusCode != wantStatus {
		return nil, fmt.Errorf("render %s: status %d, want %d", pagePath, rec.statusCode, wantStatus)
	}
	return rec.body.Bytes(), nil
}

func pageFile(outDir string, pagePath string) (string, error) {
	rel := strings.Trim(path.Clean("/"+pagePath), "/")
	if rel != "" && !filepath.IsLocal(filepath.FromSlash(rel)) {
		return "", fmt.Errorf("page path %q escapes output directory", pagePath)
	}
	return filepath.Join(outDir, filepath.FromSlash(rel), indexFile), nil
}

func writeFile(target string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("create dir for %s: %w", target, err)
	}
	if err := os.WriteFile(target, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", target, err)
	}
	return nil
}

// responseBuffer captures a rendered response in memory.
type responseBuffer struct {
	header      http.Header
	statusCode  int
	body        bytes.Buffer
	headerWrote bool
}

func newResponseBuffer() *responseBuffer {
	return &responseBuffer{
		header:     make(http.Header),
		statusCode: http.StatusOK,
	}
}

func (w *responseBuffer) Header() http.Header {
	return w.header
}

func (w *responseBuffer) WriteHeader(status int) {
	if w.headerWrote {
		return
	}
	w.headerWrote = true
	w.statusCode = status
}

func (w *responseBuffer) Write(body []byte) (int, error) {
	w.headerWrote = true
	return w.body.Write(body)
}
