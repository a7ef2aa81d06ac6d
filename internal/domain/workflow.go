package domain

import (
	"fmt"
	"regexp"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/kennytm/oztags/internal/adapter"
	"github.com/kennytm/oztags/internal/controller"
	m "github.com/kennytm/oztags/internal/model"
)

// GenerateArgs configures a tags-file generation run.
type GenerateArgs struct {
	Paths   []m.Path
	Exclude []string
	Output  m.Path
	Threads int
}

// ListArgs configures a symbol-count listing run.
type ListArgs struct {
	Paths   []m.Path
	Exclude []string
	Threads int
}

// ViewArgs configures browsing a previously generated tags file.
type ViewArgs struct {
	Tags m.Path
}

// Workflow defines the indexing operations exposed to the CLI.
type Workflow interface {
	Generate(args GenerateArgs) error
	List(args ListArgs) error
	View(args ViewArgs) error
}

type workflow struct {
	fs    adapter.SourceFSAdapter
	store adapter.TagStore
	ui    controller.UI
	rules LexRules
}

// NewWorkflow creates a Workflow instance with the provided adapters
// and the default Oz lexical rules.
func NewWorkflow(fs adapter.SourceFSAdapter, store adapter.TagStore, ui controller.UI) Workflow {
	return &workflow{
		fs:    fs,
		store: store,
		ui:    ui,
		rules: OzRules(),
	}
}

// Generate scans the inputs and writes the tags file. Per-file load
// failures are reported and skipped; only an unusable destination, or
// every input failing, makes the run fail.
func (w *workflow) Generate(args GenerateArgs) error {
	results, err := w.scan(args.Paths, args.Exclude, args.Threads)
	if err != nil {
		return err
	}

	w.ui.DisplayWarnings(results.diagnostics())

	loaded, failed := results.counts()
	if loaded == 0 && failed > 0 {
		return fmt.Errorf("all %d input file(s) failed to load", failed)
	}

	index := NewIndex()
	for _, res := range results {
		index.Add(res.symbols...)
	}

	symbols := index.Sorted()

	if err := w.store.Save(args.Output, symbols); err != nil {
		return err
	}

	w.ui.DisplaySummary(args.Output, len(symbols), loaded, failed)

	return nil
}

// List scans the inputs and displays per-file symbol counts without
// writing a tags file.
func (w *workflow) List(args ListArgs) error {
	results, err := w.scan(args.Paths, args.Exclude, args.Threads)
	if err != nil {
		return err
	}

	w.ui.DisplayWarnings(results.diagnostics())

	var counts []m.FileCount

	total := 0

	for _, res := range results {
		if res.failed {
			continue
		}

		fc := m.FileCount{File: res.path}
		for _, s := range res.symbols {
			switch s.Kind {
			case m.KindProcedure:
				fc.Procedures++
			case m.KindClass:
				fc.Classes++
			case m.KindMethod:
				fc.Methods++
			}
		}

		counts = append(counts, fc)
		total += fc.Total()
	}

	sort.Slice(counts, func(i, j int) bool {
		return counts[i].File < counts[j].File
	})

	return w.ui.DisplayCounts(counts, total)
}

// View loads a previously generated tags file and displays it.
func (w *workflow) View(args ViewArgs) error {
	symbols, err := w.store.Load(args.Tags)
	if err != nil {
		return err
	}

	return w.ui.DisplaySymbols(symbols)
}

// fileScan is the outcome of processing one input file.
type fileScan struct {
	path    m.Path
	symbols []m.Symbol
	diags   []m.Diagnostic
	failed  bool
}

type scanResults []fileScan

func (rs scanResults) diagnostics() []m.Diagnostic {
	var diags []m.Diagnostic
	for _, res := range rs {
		diags = append(diags, res.diags...)
	}

	return diags
}

func (rs scanResults) counts() (loaded, failed int) {
	for _, res := range rs {
		if res.failed {
			failed++
		} else {
			loaded++
		}
	}

	return loaded, failed
}

// scan resolves the inputs and runs Loader+Scanner+Extractor for each
// file. Files are independent, so they are processed in parallel under
// a bounded errgroup; results keep input order.
func (w *workflow) scan(paths []m.Path, exclude []string, threads int) (scanResults, error) {
	patterns, err := compileExcludes(exclude)
	if err != nil {
		return nil, err
	}

	resolved, err := w.fs.Resolve(paths)
	if err != nil {
		return nil, err
	}

	var files []m.Path

	for _, path := range resolved {
		if !matchesAny(patterns, string(path)) {
			files = append(files, path)
		}
	}

	if threads <= 0 {
		threads = 1
	}

	results := make(scanResults, len(files))

	var g errgroup.Group

	g.SetLimit(threads)

	for i, path := range files {
		g.Go(func() error {
			results[i] = w.scanFile(path)
			return nil
		})
	}

	// Workers never return errors; per-file failures are diagnostics.
	_ = g.Wait()

	return results, nil
}

// scanFile runs the per-file pipeline: load, tokenize, extract.
func (w *workflow) scanFile(path m.Path) fileScan {
	src, err := w.fs.Load(path)
	if err != nil {
		return fileScan{
			path:   path,
			failed: true,
			diags: []m.Diagnostic{{
				File:    path,
				Message: fmt.Sprintf("skipped: %v", err),
			}},
		}
	}

	scanner := NewScanner(w.rules)
	extractor := NewExtractor(path)

	for i, line := range src.Lines {
		for _, tok := range scanner.ScanLine(line, i+1) {
			extractor.Feed(tok)
		}
	}

	symbols, diags := extractor.Finish()
	diags = append(diags, scanner.Finish(path)...)

	return fileScan{path: path, symbols: symbols, diags: diags}
}

func compileExcludes(exclude []string) ([]*regexp.Regexp, error) {
	patterns := make([]*regexp.Regexp, 0, len(exclude))

	for _, expr := range exclude {
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("bad exclude pattern %q: %w", expr, err)
		}

		patterns = append(patterns, re)
	}

	return patterns, nil
}

func matchesAny(patterns []*regexp.Regexp, path string) bool {
	for _, re := range patterns {
		if re.MatchString(path) {
			return true
		}
	}

	return false
}
