package main

import (
	"fmt"
	"path/filepath"

	"github.com/fwojciec/unitdoc"
	"github.com/fwojciec/unitdoc/collate"
	"github.com/fwojciec/unitdoc/etree"
	"github.com/fwojciec/unitdoc/fs"
	"github.com/fwojciec/unitdoc/generate"
	"github.com/fwojciec/unitdoc/goquery"
	"github.com/fwojciec/unitdoc/html"
	"github.com/fwojciec/unitdoc/htmltomarkdown"
	"github.com/fwojciec/unitdoc/markdown"
	unitslog "github.com/fwojciec/unitdoc/slog"
	"github.com/fwojciec/unitdoc/yaml"
	"github.com/schollz/progressbar/v3"
)

// markdownDir is the directory below the portal holding exported pages.
const markdownDir = "markdown"

// Run executes the build command.
func (c *BuildCmd) Run(deps *Dependencies) error {
	cfg, err := yaml.LoadConfig(c.Config)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", unitdoc.ErrorMessage(err))
		return err
	}
	if c.Title != "" {
		cfg.Title = c.Title
	}
	if c.Markdown {
		cfg.Markdown = true
	}

	finder, err := fs.NewFinder(cfg.Include, cfg.Exclude)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", unitdoc.ErrorMessage(err))
		return err
	}
	collator, err := collate.New(cfg.Locale)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", unitdoc.ErrorMessage(err))
		return err
	}

	outDir := filepath.Clean(c.Output)
	siteWriter := fs.NewWriter(outDir)
	refWriter := fs.NewWriter(filepath.Dir(outDir))

	var siteOut unitdoc.FileWriter = unitslog.NewLoggingFileWriter(siteWriter, deps.Logger)
	if cfg.Markdown {
		siteOut = &htmltomarkdown.ExportWriter{
			Next:      siteOut,
			Markdown:  unitslog.NewLoggingFileWriter(fs.NewWriter(filepath.Join(outDir, markdownDir)), deps.Logger),
			Extractor: goquery.NewContentExtractor(),
			Converter: htmltomarkdown.NewConverter(),
			Skip:      []string{html.IndexName},
		}
	}

	g := &generate.Generator{
		Finder:   finder,
		Parser:   unitslog.NewLoggingUnitParser(etree.NewParser(), deps.Logger),
		Collator: collator,
		Site: unitslog.NewLoggingSiteRenderer(html.NewRenderer(html.Site{
			Title:    cfg.Title,
			Subtitle: cfg.Subtitle,
			Version:  cfg.Version,
		}), deps.Logger),
		SiteOutput: siteOut,
		Reference: unitslog.NewLoggingReferenceRenderer(&markdown.Renderer{
			Title:     cfg.Title,
			FileName:  cfg.Reference,
			PortalDir: filepath.ToSlash(filepath.Base(outDir)),
		}, deps.Logger),
		ReferenceOutput: unitslog.NewLoggingFileWriter(refWriter, deps.Logger),
	}

	fmt.Fprintf(deps.Stdout, "Scanning %s...\n", c.Input)

	var progress generate.ProgressFunc
	if c.Progress {
		progress = progressBar(deps)
	}

	result, err := g.Generate(deps.Ctx, c.Input, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", unitdoc.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Parsed %d units (%d unique, %d duplicates, %d failed)\n",
		result.Parsed, result.Unique, result.Duplicates, len(result.Failed))
	fmt.Fprintf(deps.Stdout, "Wrote %d files to %s (digest %s)\n",
		len(siteWriter.Files()), outDir, siteWriter.Digest())
	fmt.Fprintf(deps.Stdout, "Wrote %s\n", filepath.Join(refWriter.Dir(), cfg.Reference))

	if c.Check {
		return checkLinks(deps, outDir, filepath.Join(refWriter.Dir(), cfg.Reference))
	}
	return nil
}

// progressBar returns a progress callback drawing a bar on stderr.
func progressBar(deps *Dependencies) generate.ProgressFunc {
	var bar *progressbar.ProgressBar
	return func(event generate.ProgressEvent) {
		switch event.Type {
		case generate.ProgressStarted:
			bar = progressbar.NewOptions(event.Total,
				progressbar.OptionSetWriter(deps.Stderr),
				progressbar.OptionSetWidth(40),
				progressbar.OptionShowCount(),
				progressbar.OptionSetDescription("Parsing"),
				progressbar.OptionOnCompletion(func() {
					fmt.Fprintln(deps.Stderr)
				}),
			)
		case generate.ProgressParsed, generate.ProgressFailed:
			_ = bar.Set(event.Completed)
		case generate.ProgressFinished:
			_ = bar.Finish()
		}
	}
}
