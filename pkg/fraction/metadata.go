package fraction

import "encoding/json"

// DetectorFile is one auxiliary detector source file, referenced by its path
// relative to the unit's source directory and its absolute path on disk.
// Detector files are collected by reference only, never parsed.
type DetectorFile struct {
	Rel string `json:"rel"`
	Abs string `json:"abs"`
}

// FractionMetadata describes one build unit after derivation. It is built by
// the registry through an internal builder and is immutable afterwards: all
// access goes through read accessors, and slice accessors return copies.
type FractionMetadata struct {
	coord       Coordinate
	scope       Scope
	name        string
	description string

	tags      []string
	internal  bool
	stability StabilityLevel
	bootstrap string

	moduleConf     string // path of the conventional config file, "" if none
	fractionFile   string // primary implementation file, relative to the source dir; "" means not a fraction
	hasSources     bool
	baseModulePath string
	detectors      []DetectorFile

	deps       []*DependencyMetadata
	transitive []*DependencyMetadata
}

// GroupID returns the group id.
func (m *FractionMetadata) GroupID() string { return m.coord.Group }

// ArtifactID returns the artifact id.
func (m *FractionMetadata) ArtifactID() string { return m.coord.Artifact }

// Version returns the version.
func (m *FractionMetadata) Version() string { return m.coord.Version }

// Packaging returns the packaging type.
func (m *FractionMetadata) Packaging() string { return m.coord.Packaging }

// Coordinate returns the identity tuple the registry caches this metadata
// under.
func (m *FractionMetadata) Coordinate() Coordinate { return m.coord }

// Scope returns the scope fractions of this unit are consumed with.
func (m *FractionMetadata) Scope() Scope { return m.scope }

// Name returns the display name, possibly empty.
func (m *FractionMetadata) Name() string { return m.name }

// Description returns the display description, possibly empty.
func (m *FractionMetadata) Description() string { return m.description }

// Tags returns the declared tags in declaration order.
func (m *FractionMetadata) Tags() []string {
	return append([]string(nil), m.tags...)
}

// Internal reports whether the fraction is marked internal.
func (m *FractionMetadata) Internal() bool { return m.internal }

// Stability returns the declared stability level (unstable when undeclared).
func (m *FractionMetadata) Stability() StabilityLevel { return m.stability }

// Bootstrap returns the opaque bootstrap marker, "" if unset.
func (m *FractionMetadata) Bootstrap() string { return m.bootstrap }

// ModuleConf returns the path of the unit's module.conf-style config file,
// "" if none was found.
func (m *FractionMetadata) ModuleConf() string { return m.moduleConf }

// FractionFile returns the primary implementation file, relative to the
// unit's source directory. Empty means the unit is not a fraction.
func (m *FractionMetadata) FractionFile() string { return m.fractionFile }

// IsFraction reports whether a primary implementation file was found.
func (m *FractionMetadata) IsFraction() bool { return m.fractionFile != "" }

// HasSources reports whether any non-detector source file exists under the
// unit's source tree.
func (m *FractionMetadata) HasSources() bool { return m.hasSources }

// BaseModulePath returns the module path used for further resolution: the
// parent directory of the fraction file, or a path derived from the group
// and artifact ids.
func (m *FractionMetadata) BaseModulePath() string { return m.baseModulePath }

// DetectorFiles returns the collected detector file references.
func (m *FractionMetadata) DetectorFiles() []DetectorFile {
	return append([]DetectorFile(nil), m.detectors...)
}

// Dependencies returns the declared compile-scope dependencies, deduplicated
// by coordinate. The returned descriptors are the registry's pooled
// instances.
func (m *FractionMetadata) Dependencies() []*DependencyMetadata {
	return append([]*DependencyMetadata(nil), m.deps...)
}

// TransitiveDependencies returns the dependencies merged in from a persisted
// build manifest, deduplicated by coordinate.
func (m *FractionMetadata) TransitiveDependencies() []*DependencyMetadata {
	return append([]*DependencyMetadata(nil), m.transitive...)
}

// MarshalJSON emits the compact record form consumed by reports: identity
// fields are always present, everything else only when non-default.
func (m *FractionMetadata) MarshalJSON() ([]byte, error) {
	out := struct {
		GroupID     string                `json:"groupId"`
		ArtifactID  string                `json:"artifactId"`
		Version     string                `json:"version"`
		Name        string                `json:"name,omitempty"`
		Description string                `json:"description,omitempty"`
		Scope       string                `json:"scope,omitempty"`
		Tags        []string              `json:"tags,omitempty"`
		Internal    bool                  `json:"internal,omitempty"`
		Stability   string                `json:"stability,omitempty"`
		Bootstrap   string                `json:"bootstrap,omitempty"`
		Deps        []*DependencyMetadata `json:"dependencies,omitempty"`
	}{
		GroupID:     m.coord.Group,
		ArtifactID:  m.coord.Artifact,
		Version:     m.coord.Version,
		Name:        m.name,
		Description: m.description,
		Tags:        m.tags,
		Internal:    m.internal,
		Bootstrap:   m.bootstrap,
		Deps:        m.deps,
	}
	if !m.scope.IsDefault() {
		out.Scope = m.scope.String()
	}
	if m.stability != StabilityUnstable {
		out.Stability = m.stability.String()
	}
	return json.Marshal(out)
}

// metadataBuilder accumulates fields during derivation and freezes them into
// a FractionMetadata. It exists so nothing outside the derivation path can
// mutate a cached descriptor.
type metadataBuilder struct {
	meta       FractionMetadata
	depIndex   map[Coordinate]int
	transIndex map[Coordinate]int
}

func newMetadataBuilder(coord Coordinate, scope Scope) *metadataBuilder {
	return &metadataBuilder{
		meta: FractionMetadata{
			coord:     coord,
			scope:     scope,
			stability: StabilityUnstable,
		},
		depIndex:   make(map[Coordinate]int),
		transIndex: make(map[Coordinate]int),
	}
}

func (b *metadataBuilder) setName(name string)           { b.meta.name = name }
func (b *metadataBuilder) setDescription(desc string)    { b.meta.description = desc }
func (b *metadataBuilder) setTags(tags []string)         { b.meta.tags = tags }
func (b *metadataBuilder) setInternal(internal bool)     { b.meta.internal = internal }
func (b *metadataBuilder) setStability(l StabilityLevel) { b.meta.stability = l }
func (b *metadataBuilder) setBootstrap(marker string)    { b.meta.bootstrap = marker }
func (b *metadataBuilder) setModuleConf(path string)     { b.meta.moduleConf = path }
func (b *metadataBuilder) setFractionFile(rel string)    { b.meta.fractionFile = rel }
func (b *metadataBuilder) setHasSources(has bool)        { b.meta.hasSources = has }
func (b *metadataBuilder) setBaseModulePath(path string) { b.meta.baseModulePath = path }

// addDependency records a declared dependency, deduplicating by coordinate.
// A later descriptor with an equal coordinate replaces the earlier one.
func (b *metadataBuilder) addDependency(d *DependencyMetadata) {
	if i, ok := b.depIndex[d.Coordinate()]; ok {
		b.meta.deps[i] = d
		return
	}
	b.depIndex[d.Coordinate()] = len(b.meta.deps)
	b.meta.deps = append(b.meta.deps, d)
}

// addTransitive records a manifest-merged transitive dependency,
// deduplicating by coordinate with the same last-write-wins rule.
func (b *metadataBuilder) addTransitive(d *DependencyMetadata) {
	if i, ok := b.transIndex[d.Coordinate()]; ok {
		b.meta.transitive[i] = d
		return
	}
	b.transIndex[d.Coordinate()] = len(b.meta.transitive)
	b.meta.transitive = append(b.meta.transitive, d)
}

// addDetector records one detector file reference.
func (b *metadataBuilder) addDetector(f DetectorFile) {
	b.meta.detectors = append(b.meta.detectors, f)
}

// build freezes the accumulated state. The builder must not be used after.
func (b *metadataBuilder) build() *FractionMetadata {
	m := b.meta
	return &m
}
