package fraction

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"fractionbom/pkg/observability"
	"fractionbom/pkg/project"
)

// Property keys read from a unit's declared properties.
const (
	PropScope      = "fraction.scope"
	PropTags       = "fraction.tags"
	PropInternal   = "fraction.internal"
	PropStability  = "fraction.stability"
	PropBootstrap  = "fraction.bootstrap"
	PropBOMInclude = "bom.include"
)

// Config tunes the filesystem conventions the registry derives metadata
// from. The zero value works: withDefaults fills in the conventional names,
// and unset module exclusions simply never match.
type Config struct {
	// RootModule is the bootstrap root of the module tree. It is never
	// resolved; asking for it always yields absent, which avoids a
	// self-referential cycle at the root.
	RootModule GroupArtifact

	// SPIModule is the base SPI module. Its source tree is never scanned
	// for a fraction file even though one may match the suffix.
	SPIModule GroupArtifact

	// FractionSuffix is the file name suffix identifying a unit's primary
	// implementation file (default "Fraction.java").
	FractionSuffix string

	// SourceSuffix identifies implementation source files for the
	// has-sources check (default ".java").
	SourceSuffix string

	// DetectDir is the directory name of the auxiliary detector
	// subpackage (default "detect").
	DetectDir string

	// ModuleConf is the conventional config file name looked up in the
	// unit's base directory (default "module.conf").
	ModuleConf string

	// ManifestPath is the path of the persisted build manifest, relative
	// to the unit's base directory (default
	// target/classes/META-INF/fraction-manifest.yaml).
	ManifestPath string

	// Logger receives non-fatal derivation problems (default log.Default()).
	Logger *log.Logger
}

func (c Config) withDefaults() Config {
	cfg := c
	if cfg.FractionSuffix == "" {
		cfg.FractionSuffix = "Fraction.java"
	}
	if cfg.SourceSuffix == "" {
		cfg.SourceSuffix = ".java"
	}
	if cfg.DetectDir == "" {
		cfg.DetectDir = "detect"
	}
	if cfg.ModuleConf == "" {
		cfg.ModuleConf = "module.conf"
	}
	if cfg.ManifestPath == "" {
		cfg.ManifestPath = filepath.Join("target", "classes", "META-INF", "fraction-manifest.yaml")
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	return cfg
}

// Registry caches fraction metadata per build pass. It derives metadata the
// first time a coordinate is asked for and memoizes the result, so each key
// pays the derivation cost (directory walks, manifest reads) at most once.
//
// A Registry is not safe for concurrent use; the expected caller is a single
// goroutine driving the module tree in whatever order it likes.
type Registry struct {
	cfg Config
	log *log.Logger

	fractions     map[Coordinate]*FractionMetadata
	pool          map[Coordinate]*DependencyMetadata
	bomInclusions []*DependencyMetadata
}

// NewRegistry creates an empty registry with the given configuration.
// Construct one per build pass; there is no teardown.
func NewRegistry(cfg Config) *Registry {
	c := cfg.withDefaults()
	return &Registry{
		cfg:       c,
		log:       c.Logger,
		fractions: make(map[Coordinate]*FractionMetadata),
		pool:      make(map[Coordinate]*DependencyMetadata),
	}
}

// Resolve returns the metadata for a build unit, deriving and caching it on
// first sight. It returns nil when the unit is absent: a nil project, the
// configured root module, or a unit with no fraction file. Negative results
// are remembered too, so derivation still runs at most once per coordinate.
func (r *Registry) Resolve(p *project.Project) *FractionMetadata {
	if p == nil {
		return nil
	}
	if r.cfg.RootModule.matches(p.GroupID, p.ArtifactID) {
		return nil
	}

	key := Coordinate{
		Group:     p.GroupID,
		Artifact:  p.ArtifactID,
		Version:   p.Version,
		Packaging: p.Packaging,
	}
	if meta, ok := r.fractions[key]; ok {
		observability.Registry().OnResolveHit(key.String())
		return meta
	}

	observability.Registry().OnDeriveStart(key.String())
	start := time.Now()
	meta := r.derive(key, p)
	r.fractions[key] = meta
	observability.Registry().OnDeriveComplete(key.String(), meta != nil, time.Since(start))
	return meta
}

// Lookup returns the cached metadata for a dependency's coordinate, or nil.
// It never triggers derivation: a dependency may reference a unit outside
// this build pass.
func (r *Registry) Lookup(d *DependencyMetadata) *FractionMetadata {
	if d == nil {
		return nil
	}
	return r.fractions[d.Coordinate()]
}

// BOMInclusions returns the non-fraction units that asked to be included in
// the generated BOM, in the order they were resolved.
func (r *Registry) BOMInclusions() []*DependencyMetadata {
	return append([]*DependencyMetadata(nil), r.bomInclusions...)
}

// derive runs the full derivation for one unit. All filesystem problems are
// logged and degrade to "nothing found"; derive never fails a build pass.
func (r *Registry) derive(key Coordinate, p *project.Project) *FractionMetadata {
	b := newMetadataBuilder(key, ParseScope(p.Properties[PropScope]))

	b.setName(p.Name)
	b.setDescription(p.Description)
	if tags, ok := p.Properties[PropTags]; ok {
		b.setTags(strings.Split(tags, ","))
	}
	b.setInternal(p.Properties[PropInternal] == "true")
	if stability, ok := p.Properties[PropStability]; ok {
		b.setStability(ParseStability(stability))
	}
	b.setBootstrap(p.Properties[PropBootstrap])

	if dirExists(p.BaseDir) {
		conf := filepath.Join(p.BaseDir, r.cfg.ModuleConf)
		if fileExists(conf) {
			b.setModuleConf(conf)
		}
		r.mergeManifest(b, filepath.Join(p.BaseDir, r.cfg.ManifestPath))
	}

	if !r.cfg.SPIModule.matches(p.GroupID, p.ArtifactID) {
		rel, err := findFractionFile(p.SourceDir, r.cfg.FractionSuffix)
		if err != nil {
			r.log.Warn("fraction file scan failed", "module", p.ArtifactID, "dir", p.SourceDir, "err", err)
		}
		b.setFractionFile(rel)
	}

	if !b.meta.IsFraction() {
		if _, ok := p.Properties[PropBOMInclude]; ok {
			r.bomInclusions = append(r.bomInclusions,
				NewDependency(p.GroupID, p.ArtifactID, p.Version, Classifier{}, p.Packaging, b.meta.scope.String()))
		}
		// Not a fraction. The nil result is still cached by Resolve so
		// the walks above run only once per key.
		return nil
	}

	hasSources, err := hasSourceFiles(p.SourceDir, r.cfg.SourceSuffix, r.cfg.DetectDir)
	if err != nil {
		r.log.Warn("source scan failed", "module", p.ArtifactID, "dir", p.SourceDir, "err", err)
	}
	b.setHasSources(hasSources)
	b.setBaseModulePath(baseModulePath(b.meta.fractionFile, p.GroupID, p.ArtifactID))

	detectors, err := collectDetectorFiles(p.SourceDir, r.cfg.DetectDir)
	if err != nil {
		r.log.Warn("detector scan failed", "module", p.ArtifactID, "dir", p.SourceDir, "err", err)
	}
	for _, f := range detectors {
		b.addDetector(f)
	}

	for _, d := range p.Dependencies {
		if ParseScope(d.Scope) != ScopeCompile {
			continue
		}
		b.addDependency(r.pooled(d))
	}

	return b.build()
}

// pooled returns the shared descriptor for a declared dependency, creating
// and pooling one on first sight. Units declaring equal coordinates share a
// single instance.
func (r *Registry) pooled(d project.Dependency) *DependencyMetadata {
	var classifier Classifier
	if d.Classifier != nil {
		classifier = NewClassifier(*d.Classifier)
	}
	key := Coordinate{
		Group:      d.GroupID,
		Artifact:   d.ArtifactID,
		Version:    d.Version,
		Classifier: classifier,
		Packaging:  d.Type,
	}
	if dep, ok := r.pool[key]; ok {
		return dep
	}
	dep := NewDependency(d.GroupID, d.ArtifactID, d.Version, classifier, d.Type, d.Scope)
	r.pool[key] = dep
	return dep
}

// baseModulePath is the parent directory of the fraction file when one was
// found, or else a deterministic path derived from the ids: dots in the
// group and dashes in the artifact become path separators.
func baseModulePath(fractionFile, group, artifact string) string {
	if fractionFile != "" {
		return filepath.Dir(fractionFile)
	}
	segments := append(strings.Split(group, "."), strings.Split(artifact, "-")...)
	return filepath.Join(segments...)
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
