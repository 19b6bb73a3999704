// Package library keeps decoded PubChem compounds in memory and loads them
// from files or directory trees.
package library

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/OpenTraceLab/pcasn/pkg/chem"
	"github.com/OpenTraceLab/pcasn/pkg/pcasn"
)

// DefaultExtensions are the file extensions LoadDir picks up.
var DefaultExtensions = []string{".asn", ".asnt"}

// Library is a concurrency-safe set of named molecules.
type Library struct {
	mu        sync.RWMutex
	molecules map[string]*chem.Molecule

	logger     log.Logger
	workers    int
	extensions []string
	readOpts   []pcasn.Option
}

// Option configures a Library.
type Option func(*Library)

// WithLogger sets the logger used while loading.
func WithLogger(logger log.Logger) Option {
	return func(l *Library) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithWorkers bounds the number of files decoded at once.
func WithWorkers(n int) Option {
	return func(l *Library) {
		if n > 0 {
			l.workers = n
		}
	}
}

// WithExtensions replaces the extensions LoadDir accepts. Matching is
// case-insensitive; a missing leading dot is added.
func WithExtensions(exts ...string) Option {
	return func(l *Library) {
		l.extensions = l.extensions[:0]
		for _, ext := range exts {
			ext = strings.ToLower(strings.TrimSpace(ext))
			if ext == "" {
				continue
			}
			if !strings.HasPrefix(ext, ".") {
				ext = "." + ext
			}
			l.extensions = append(l.extensions, ext)
		}
	}
}

// WithReaderOptions passes options to every pcasn reader the library
// creates.
func WithReaderOptions(opts ...pcasn.Option) Option {
	return func(l *Library) {
		l.readOpts = append(l.readOpts, opts...)
	}
}

// New creates an empty library.
func New(opts ...Option) *Library {
	l := &Library{
		molecules:  make(map[string]*chem.Molecule),
		logger:     log.NewNopLogger(),
		workers:    runtime.GOMAXPROCS(0),
		extensions: append([]string(nil), DefaultExtensions...),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Add registers mol under name, replacing any previous entry.
func (l *Library) Add(name string, mol *chem.Molecule) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.molecules[name] = mol
}

// Get returns the molecule registered under name.
func (l *Library) Get(name string) (*chem.Molecule, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if mol, ok := l.molecules[name]; ok {
		return mol, nil
	}
	return nil, fmt.Errorf("library: no compound named %q", name)
}

// Names returns the registered names in sorted order.
func (l *Library) Names() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	names := make([]string, 0, len(l.molecules))
	for name := range l.molecules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered molecules.
func (l *Library) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.molecules)
}

// LoadFiles decodes each path and registers the molecule under the file's
// base name. Files are decoded in parallel; the first failure cancels the
// rest and is returned.
func (l *Library) LoadFiles(ctx context.Context, paths ...string) error {
	jobs := make([]loadJob, 0, len(paths))
	for _, path := range paths {
		jobs = append(jobs, loadJob{name: filepath.Base(path), path: path})
	}
	return l.load(ctx, jobs)
}

// LoadDir recursively decodes every file under root whose extension is
// accepted, naming each molecule by its slash-separated path relative to
// root.
func (l *Library) LoadDir(ctx context.Context, root string) error {
	var jobs []loadJob
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() || !l.accepts(path) {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		jobs = append(jobs, loadJob{name: filepath.ToSlash(rel), path: path})
		return nil
	})
	if err != nil {
		return errors.Wrapf(err, "library: walk %s", root)
	}
	return l.load(ctx, jobs)
}

type loadJob struct {
	name string
	path string
}

func (l *Library) load(ctx context.Context, jobs []loadJob) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(l.workers)

	for _, job := range jobs {
		job := job
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			file, err := pcasn.ReadFile(job.path, l.readOpts...)
			if err != nil {
				return errors.Wrapf(err, "library: load %s", job.path)
			}
			mol := file.Molecules()[0]
			l.Add(job.name, mol)
			level.Debug(l.logger).Log("msg", "loaded compound", "name", job.name, "atoms", mol.AtomCount(), "bonds", mol.BondCount())
			return nil
		})
	}
	return g.Wait()
}

func (l *Library) accepts(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, want := range l.extensions {
		if ext == want {
			return true
		}
	}
	return false
}
