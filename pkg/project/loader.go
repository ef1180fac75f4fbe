package project

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"fractionbom/pkg/cache"
	"fractionbom/pkg/errors"
	"fractionbom/pkg/observability"
)

// Loader reads projects from disk. Decoded projects are memoized in the
// configured cache keyed by the sha256 of the raw POM bytes, so unchanged
// files skip XML decoding on later runs.
type Loader struct {
	cache  cache.Cache
	logger *log.Logger
}

// NewLoader creates a loader. A nil cache disables memoization and a nil
// logger falls back to log.Default().
func NewLoader(c cache.Cache, logger *log.Logger) *Loader {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Loader{cache: c, logger: logger}
}

// Load reads and decodes a single pom.xml. path may be the file itself or a
// directory containing one.
func (l *Loader) Load(ctx context.Context, path string) (*Project, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "cannot read project file %s", path)
	}
	if info.IsDir() {
		path = filepath.Join(path, "pom.xml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "cannot read project file %s", path)
	}
	baseDir := filepath.Dir(path)

	key := "pom:" + cache.Hash(data) + ":" + baseDir
	if cached, hit, err := l.cache.Get(ctx, key); err == nil && hit {
		var p Project
		if err := json.Unmarshal(cached, &p); err == nil {
			observability.Cache().OnCacheHit("pom")
			return &p, nil
		}
		// Unreadable entry: fall through and re-decode.
	}
	observability.Cache().OnCacheMiss("pom")

	p, err := decodePOM(data, baseDir)
	if err != nil {
		return nil, err
	}

	if encoded, err := json.Marshal(p); err == nil {
		if err := l.cache.Set(ctx, key, encoded, 0); err != nil {
			l.logger.Debug("cannot cache project", "path", path, "err", err)
		} else {
			observability.Cache().OnCacheSet("pom", len(encoded))
		}
	}
	return p, nil
}

// LoadTree loads the project at rootDir and, recursively, every project its
// <modules> declarations reference, in declaration order with the root
// first. A child that cannot be loaded is logged and skipped; only a broken
// root fails the whole load.
func (l *Loader) LoadTree(ctx context.Context, rootDir string) ([]*Project, error) {
	root, err := l.Load(ctx, rootDir)
	if err != nil {
		return nil, err
	}

	projects := []*Project{root}
	projects = append(projects, l.loadModules(ctx, root)...)
	return projects, nil
}

func (l *Loader) loadModules(ctx context.Context, parent *Project) []*Project {
	var out []*Project
	for _, module := range parent.Modules {
		if err := ctx.Err(); err != nil {
			l.logger.Warn("module tree load canceled", "parent", parent.ArtifactID)
			return out
		}
		child, err := l.Load(ctx, filepath.Join(parent.BaseDir, module))
		if err != nil {
			l.logger.Warn("skipping module", "parent", parent.ArtifactID, "module", module, "err", err)
			continue
		}
		out = append(out, child)
		out = append(out, l.loadModules(ctx, child)...)
	}
	return out
}
