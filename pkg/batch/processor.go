// Package batch runs multiple input files through the TOC pipeline in
// parallel and collects per-file results for summary reporting.
package batch

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"toc-filter/pkg/config"
	"toc-filter/pkg/render"
	"toc-filter/pkg/toc"
	"toc-filter/pkg/utils"
)

// FileResult contains the result of transforming a single input file
type FileResult struct {
	Path       string
	OutputPath string
	Success    bool
	Error      error
	Headings   int // headings inside the configured level window
	Duration   time.Duration
}

// Processor transforms input files in parallel with shared options
type Processor struct {
	appCfg config.AppConfig
	opts   toc.Options
	format string // input format: config.FormatHTML or config.FormatMarkdown
	emit   string // output format: config.FormatHTML or config.FormatMarkdown
	outDir string
	log    *logrus.Entry

	results   []FileResult
	resultsMu sync.Mutex
}

// NewProcessor creates a Processor. opts are the base TOC options; marker
// options inside each document still override them per invocation.
func NewProcessor(appCfg config.AppConfig, opts toc.Options, format, emit, outDir string, log *logrus.Entry) *Processor {
	return &Processor{
		appCfg: appCfg,
		opts:   opts,
		format: format,
		emit:   emit,
		outDir: outDir,
		log:    log,
	}
}

// Run transforms all paths in parallel, bounded by num_workers, and waits
// for completion. Per-file failures are collected, not fatal; the only
// error returned is context cancellation.
func (p *Processor) Run(ctx context.Context, paths []string) ([]FileResult, error) {
	startTime := time.Now()
	p.log.Infof("Processing %d files with %d workers", len(paths), p.appCfg.NumWorkers)

	if err := os.MkdirAll(p.outDir, 0755); err != nil {
		return nil, utils.WrapErrorf(utils.ErrFilesystem, "creating output directory '%s': %v", p.outDir, err)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.appCfg.NumWorkers)

	for _, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			result := p.processFile(path)
			p.resultsMu.Lock()
			p.results = append(p.results, result)
			p.resultsMu.Unlock()
			return nil
		})
	}

	err := g.Wait()
	p.logSummary(time.Since(startTime))
	return p.results, err
}

// processFile transforms a single file and writes the output
func (p *Processor) processFile(path string) FileResult {
	startTime := time.Now()
	result := FileResult{Path: path}
	fileLog := p.log.WithField("file", path)

	raw, err := os.ReadFile(path)
	if err != nil {
		result.Error = utils.WrapErrorf(utils.ErrFilesystem, "reading '%s': %v", path, err)
		fileLog.Warn(result.Error)
		return result
	}

	doc := string(raw)
	if p.format == config.FormatMarkdown {
		doc, err = render.MarkdownToHTML(raw)
		if err != nil {
			result.Error = err
			fileLog.Warn(err)
			return result
		}
	}

	if title := render.DocumentTitle(doc); title != "" {
		fileLog = fileLog.WithField("title", title)
	}

	result.Headings = len(toc.Headings(doc, p.opts))
	out := toc.Insert(doc, p.opts)

	if p.emit == config.FormatMarkdown {
		out, err = render.HTMLToMarkdown(out)
		if err != nil {
			result.Error = err
			fileLog.Warn(err)
			return result
		}
	}

	result.OutputPath = p.outputPathFor(path)
	if err := os.WriteFile(result.OutputPath, []byte(out), 0644); err != nil {
		result.Error = utils.WrapErrorf(utils.ErrFilesystem, "saving '%s': %v", result.OutputPath, err)
		fileLog.Warn(result.Error)
		return result
	}

	result.Success = true
	result.Duration = time.Since(startTime)
	fileLog.Infof("Transformed (%d headings, %d bytes): %s", result.Headings, len(out), result.OutputPath)
	return result
}

// outputPathFor maps an input path to its output path: same base name in
// the output directory, extension matching the emit format.
func (p *Processor) outputPathFor(path string) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	name := strings.TrimSuffix(base, ext)
	if p.emit == config.FormatMarkdown {
		return filepath.Join(p.outDir, name+".md")
	}
	return filepath.Join(p.outDir, name+".html")
}

// logSummary logs per-file results and overall counts
func (p *Processor) logSummary(totalDuration time.Duration) {
	p.resultsMu.Lock()
	defer p.resultsMu.Unlock()

	successCount := 0
	failCount := 0
	totalHeadings := 0
	for _, r := range p.results {
		if r.Success {
			successCount++
			totalHeadings += r.Headings
			continue
		}
		failCount++
		p.log.Warnf("  %s: FAILED (%s): %v", r.Path, utils.CategorizeError(r.Error), r.Error)
	}

	p.log.Infof("Batch completed in %v: %d files (%d success, %d failed), %d headings linked",
		totalDuration, len(p.results), successCount, failCount, totalHeadings)
}

// OptionsFromConfig assembles the effective base TOC options for a profile
func OptionsFromConfig(profileCfg config.ProfileConfig, appCfg config.AppConfig) toc.Options {
	return toc.Options{
		MinLevel:       config.GetEffectiveMinLevel(profileCfg, appCfg),
		MaxLevel:       config.GetEffectiveMaxLevel(profileCfg, appCfg),
		ChapterNumbers: config.GetEffectiveChapterNumbers(profileCfg, appCfg),
		Prefix:         config.GetEffectivePrefix(profileCfg, appCfg),
		EmitHeadingID:  config.GetEffectiveEmitHeadingID(profileCfg, appCfg),
	}
}
