package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"git.home.luguber.info/inful/codedoc/internal/config"
	"git.home.luguber.info/inful/codedoc/internal/content"
	cderrors "git.home.luguber.info/inful/codedoc/internal/errors"
	"git.home.luguber.info/inful/codedoc/internal/linkcheck"
	"git.home.luguber.info/inful/codedoc/internal/logfields"
	"git.home.luguber.info/inful/codedoc/internal/normalize"
	"git.home.luguber.info/inful/codedoc/internal/preview"
	"git.home.luguber.info/inful/codedoc/internal/record"
	"git.home.luguber.info/inful/codedoc/internal/site"
	"git.home.luguber.info/inful/codedoc/internal/source"
	"git.home.luguber.info/inful/codedoc/internal/state"
	"git.home.luguber.info/inful/codedoc/internal/watch"
)

func formats(cfg *config.Config) []content.Format {
	var out []content.Format
	for _, f := range cfg.Output.Formats {
		switch f {
		case "markdown":
			out = append(out, content.FormatMarkdown)
		case "html":
			out = append(out, content.FormatHTML)
		}
	}
	return out
}

// generate runs one full generation pass and returns the rendered pages.
func generate(ctx context.Context, cfg *config.Config, logger *slog.Logger, cache site.Cache) ([]site.Page, error) {
	start := time.Now()

	records, err := record.Load(cfg.Records)
	if err != nil {
		return nil, err
	}
	reader := normalize.Run(records)

	srcRoot, cleanup, err := source.Resolve(ctx, cfg.Source, cfg.GitURL)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	gen := site.New(site.Options{
		OutDir:         cfg.Output.Dir,
		BaseURL:        cfg.Output.BaseURL,
		Title:          cfg.Site.Title,
		Formats:        formats(cfg),
		IndexUnit:      cfg.Site.IndexEnabled(),
		HighlightStyle: cfg.Highlight.Style,
		SourceRoot:     srcRoot,
		Cache:          cache,
		Logger:         logger,
	})
	pages, _, err := gen.Run(reader)
	if err != nil {
		return nil, err
	}

	logger.Info("generation complete",
		logfields.Pages(len(pages)),
		logfields.DurationMS(float64(time.Since(start).Milliseconds())))
	return pages, nil
}

func runGenerate(ctx context.Context, cfg *config.Config, logger *slog.Logger, incremental, check bool) error {
	var cache site.Cache
	if incremental {
		path := cfg.Cache.Path
		if path == "" {
			path = ".codedoc-cache.db"
		}
		c, err := state.Open(path)
		if err != nil {
			return cderrors.Wrap(err, cderrors.CategoryFileSystem, cderrors.SeverityFatal, "opening incremental cache failed")
		}
		defer c.Close()
		cache = c
	}

	pages, err := generate(ctx, cfg, logger, cache)
	if err != nil {
		return err
	}
	if check {
		return reportIssues(logger, pages)
	}
	return nil
}

func runVerify(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	pages, err := generate(ctx, cfg, logger, nil)
	if err != nil {
		return err
	}
	return reportIssues(logger, pages)
}

func reportIssues(logger *slog.Logger, pages []site.Page) error {
	checkPages := make([]linkcheck.Page, 0, len(pages))
	for _, p := range pages {
		cp := linkcheck.Page{Slug: p.Slug, Markdown: p.Markdown}
		if p.HTML != nil {
			cp.HTML = p.HTML.Body
		}
		checkPages = append(checkPages, cp)
	}

	issues := linkcheck.Verify(checkPages)
	for _, issue := range issues {
		logger.Warn("unresolved link", logfields.Unit(issue.Page), "link", issue.Link, "reason", issue.Reason)
	}
	if len(issues) > 0 {
		return cderrors.New(cderrors.CategoryRender, cderrors.SeverityError,
			fmt.Sprintf("%d unresolved links", len(issues)))
	}
	logger.Info("all links resolve")
	return nil
}

func runWatch(ctx context.Context, cfg *config.Config, logger *slog.Logger, withPreview bool) error {
	metrics := preview.NewMetrics()

	rebuild := func(ctx context.Context) error {
		start := time.Now()
		pages, err := generate(ctx, cfg, logger, nil)
		if err != nil {
			return err
		}
		metrics.ObserveBuild(time.Since(start), len(pages))
		return nil
	}

	// Initial pass before watching.
	if err := rebuild(ctx); err != nil {
		return err
	}

	w, err := watch.New([]string{cfg.Records, cfg.Source}, rebuild)
	if err != nil {
		return cderrors.Wrap(err, cderrors.CategoryFileSystem, cderrors.SeverityFatal, "starting watcher failed")
	}

	if withPreview {
		srv := preview.NewServer(cfg.Preview.Addr, cfg.Output.Dir, metrics)
		go func() {
			if err := srv.Run(ctx); err != nil {
				logger.Error("preview server failed", logfields.Error(err))
			}
		}()
	}

	if err := w.Run(ctx); err != nil && err != context.Canceled {
		return err
	}
	return nil
}

const starterConfig = `# codedoc configuration
records: records.json   # parser output (JSON array of raw records)
source: .               # root for example file references
# git_url: https://example.com/team/project.git

output:
  dir: ./docs
  formats: [markdown, html]
  base_url: ""

site:
  title: API Reference
  index: true

highlight:
  style: github

cache:
  path: ""              # sqlite path; empty disables incremental mode

preview:
  addr: ":8080"

logging:
  level: info
`

func runInit(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return cderrors.New(cderrors.CategoryValidation, cderrors.SeverityFatal,
			"configuration already exists, use --force to overwrite").WithContext("path", path)
	}
	if err := os.WriteFile(path, []byte(starterConfig), 0o644); err != nil {
		return cderrors.WriteFailed(path, err)
	}
	slog.Info("configuration written", logfields.File(path))
	return nil
}
