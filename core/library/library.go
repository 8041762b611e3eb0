// Package library loads a chalk library from disk: the manifest, the
// optional bibliography, and every page the manifest names. Pages
// parse concurrently on a bounded worker pool and parse results are
// memoized by content digest, so reloading an unchanged library does
// no re-parsing. A page that fails to parse is recorded and skipped;
// it never aborts the rest of the load.
package library

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"github.com/FocuswithJustin/chalk/core/ast"
	cerrors "github.com/FocuswithJustin/chalk/core/errors"
	"github.com/FocuswithJustin/chalk/core/parser"
	"github.com/FocuswithJustin/chalk/internal/logging"
)

// ManifestFile is the manifest filename at the library root.
const ManifestFile = "manifest.math"

// BibliographyFile is the optional bibliography filename at the
// library root.
const BibliographyFile = "bib.math"

// DefaultCacheSize bounds the parse cache when Options leaves it
// unset.
const DefaultCacheSize = 256

// Options configures a Loader.
type Options struct {
	// Workers caps the parse pool. Zero means runtime.NumCPU.
	Workers int

	// CacheSize bounds the parse cache. Zero means DefaultCacheSize;
	// negative disables eviction.
	CacheSize int
}

// Loader loads libraries. A single Loader may be reused across loads;
// the parse cache carries over, so pages whose bytes did not change
// between loads are not re-parsed.
type Loader struct {
	workers int
	cache   *parseCache
}

// NewLoader builds a Loader with the given options.
func NewLoader(opts Options) *Loader {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	cacheSize := opts.CacheSize
	if cacheSize == 0 {
		cacheSize = DefaultCacheSize
	}
	if cacheSize < 0 {
		cacheSize = 0
	}
	return &Loader{workers: workers, cache: newParseCache(cacheSize)}
}

// Page is one loaded page. Doc is nil when Err is set.
type Page struct {
	ID   string
	Name string
	Path string
	Doc  *ast.Document
	Err  error
}

// Library is the result of a load.
type Library struct {
	Root         string
	Manifest     *ast.Manifest
	Bibliography []*ast.BibEntry

	// Pages maps page id to its load result, failed pages included.
	Pages map[string]*Page
}

// Failed returns the pages that did not parse, in no particular order.
func (l *Library) Failed() []*Page {
	var out []*Page
	for _, p := range l.Pages {
		if p.Err != nil {
			out = append(out, p)
		}
	}
	return out
}

// CacheStats reports the loader's parse cache counters.
func (l *Loader) CacheStats() CacheStats {
	return l.cache.Stats()
}

// Load reads the manifest at root, then parses every page it names.
// Manifest or bibliography errors fail the load; page errors are
// recorded per page.
func (l *Loader) Load(ctx context.Context, root string) (*Library, error) {
	started := time.Now()

	manifestPath := filepath.Join(root, ManifestFile)
	manifestSrc, err := os.ReadFile(manifestPath)
	if err != nil {
		return nil, cerrors.NewIO("read", manifestPath, err)
	}
	manifest, err := parser.ParseManifest(string(manifestSrc))
	if err != nil {
		logging.ParseFailure(manifestPath, errorLocation(err), err)
		return nil, cerrors.NewParse("manifest", manifestPath, err.Error())
	}

	lib := &Library{
		Root:     root,
		Manifest: manifest,
		Pages:    make(map[string]*Page),
	}

	bibPath := filepath.Join(root, BibliographyFile)
	if bibSrc, err := os.ReadFile(bibPath); err == nil {
		entries, err := parser.ParseBibliography(string(bibSrc))
		if err != nil {
			logging.ParseFailure(bibPath, errorLocation(err), err)
			return nil, cerrors.NewParse("bibliography", bibPath, err.Error())
		}
		lib.Bibliography = entries
	} else if !os.IsNotExist(err) {
		return nil, cerrors.NewIO("read", bibPath, err)
	}

	pages := manifestPages(manifest)
	if err := l.parsePages(ctx, root, pages, lib); err != nil {
		return nil, err
	}

	logging.LibraryLoaded(root, len(manifest.Books), len(lib.Pages), time.Since(started))
	return lib, nil
}

// pageJob names one page to load: the manifest id plus the relative
// source path derived from its book and chapter.
type pageJob struct {
	id   string
	name string
	rel  string
}

// manifestPages flattens the manifest tree into page jobs. Page files
// live at <root>/<book>/<chapter>/<page>.math.
func manifestPages(m *ast.Manifest) []pageJob {
	var jobs []pageJob
	for _, book := range m.Books {
		for _, chapter := range book.Chapters {
			for _, page := range chapter.Pages {
				jobs = append(jobs, pageJob{
					id:   page.ID,
					name: page.Name,
					rel:  filepath.Join(book.ID, chapter.ID, page.ID),
				})
			}
		}
	}
	return jobs
}

// parsePages runs the worker pool. Results land in lib.Pages under a
// mutex; cancellation is checked before each page.
func (l *Loader) parsePages(ctx context.Context, root string, jobs []pageJob, lib *Library) error {
	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		jobCh   = make(chan pageJob)
		ctxErr  error
		ctxOnce sync.Once
	)

	workers := l.workers
	if workers > len(jobs) {
		workers = len(jobs)
	}
	if workers < 1 {
		workers = 1
	}

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobCh {
				if err := ctx.Err(); err != nil {
					ctxOnce.Do(func() { ctxErr = err })
					continue
				}
				page := l.loadPage(root, job)
				mu.Lock()
				lib.Pages[job.id] = page
				mu.Unlock()
			}
		}()
	}

	for _, job := range jobs {
		jobCh <- job
	}
	close(jobCh)
	wg.Wait()

	return ctxErr
}

// loadPage resolves, reads, and parses one page, consulting the parse
// cache by content digest first.
func (l *Loader) loadPage(root string, job pageJob) *Page {
	page := &Page{ID: job.id, Name: job.name}

	path, err := ResolvePage(root, job.rel)
	if err != nil {
		page.Err = err
		return page
	}
	page.Path = path

	data, err := ReadSource(path)
	if err != nil {
		page.Err = err
		return page
	}

	digest := Digest(data)
	if doc, ok := l.cache.get(digest); ok {
		logging.CacheEvent("hit", digest)
		page.Doc = doc
		return page
	}
	logging.CacheEvent("miss", digest)

	started := time.Now()
	doc, err := parser.ParseDocument(string(data))
	if err != nil {
		logging.ParseFailure(path, errorLocation(err), err)
		page.Err = cerrors.NewParse("document", path, err.Error())
		return page
	}
	logging.PageParsed(job.id, path, time.Since(started))

	l.cache.put(digest, doc)
	page.Doc = doc
	return page
}

// errorLocation extracts the line:column position from a syntax error,
// for log correlation.
func errorLocation(err error) string {
	var se *parser.SyntaxError
	if cerrors.As(err, &se) {
		return se.Pos.String()
	}
	return ""
}
