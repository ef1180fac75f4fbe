package fraction

import (
	"encoding/json"
	"strings"

	"fractionbom/pkg/errors"
)

// DependencyMetadata is one resolved dependency coordinate plus its scope.
// Instances are immutable once constructed and may be shared between many
// fractions: the registry pools them by [Coordinate].
type DependencyMetadata struct {
	coord Coordinate
	scope Scope
}

// NewDependency constructs a dependency descriptor. The scope string is
// normalized with [ParseScope], so an empty or unknown scope becomes compile.
func NewDependency(group, artifact, version string, classifier Classifier, packaging, scope string) *DependencyMetadata {
	return &DependencyMetadata{
		coord: Coordinate{
			Group:      group,
			Artifact:   artifact,
			Version:    version,
			Classifier: classifier,
			Packaging:  packaging,
		},
		scope: ParseScope(scope),
	}
}

// ParseDependency parses the colon-delimited coordinate form
//
//	group:artifact:packaging:version
//	group:artifact:packaging:classifier:version
//
// used by persisted build manifests. Any other field count is a hard parse
// error: it indicates corrupt input, never a value to be defaulted.
func ParseDependency(s string) (*DependencyMetadata, error) {
	parts := strings.Split(s, ":")
	switch len(parts) {
	case 4:
		return NewDependency(parts[0], parts[1], parts[3], Classifier{}, parts[2], ""), nil
	case 5:
		return NewDependency(parts[0], parts[1], parts[4], NewClassifier(parts[3]), parts[2], ""), nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidCoordinate,
			"malformed dependency coordinate %q: want group:artifact:packaging[:classifier]:version", s)
	}
}

// GroupID returns the group id.
func (d *DependencyMetadata) GroupID() string { return d.coord.Group }

// ArtifactID returns the artifact id.
func (d *DependencyMetadata) ArtifactID() string { return d.coord.Artifact }

// Version returns the version.
func (d *DependencyMetadata) Version() string { return d.coord.Version }

// Classifier returns the optional classifier.
func (d *DependencyMetadata) Classifier() Classifier { return d.coord.Classifier }

// Packaging returns the packaging type (e.g. "jar", "pom").
func (d *DependencyMetadata) Packaging() string { return d.coord.Packaging }

// Scope returns the dependency scope.
func (d *DependencyMetadata) Scope() Scope { return d.scope }

// Coordinate returns the identity tuple used for pooling and lookups.
func (d *DependencyMetadata) Coordinate() Coordinate { return d.coord }

// HasDefaultScope reports whether the scope is compile, in which case
// serialized forms elide it.
func (d *DependencyMetadata) HasDefaultScope() bool { return d.scope.IsDefault() }

// String renders the canonical colon form, the inverse of [ParseDependency]:
// group:artifact:packaging[:classifier]:version, classifier omitted when
// absent.
func (d *DependencyMetadata) String() string {
	var b strings.Builder
	b.WriteString(d.coord.Group)
	b.WriteByte(':')
	b.WriteString(d.coord.Artifact)
	b.WriteByte(':')
	b.WriteString(d.coord.Packaging)
	if d.coord.Classifier.Set {
		b.WriteByte(':')
		b.WriteString(d.coord.Classifier.Value)
	}
	b.WriteByte(':')
	b.WriteString(d.coord.Version)
	return b.String()
}

// MarshalJSON emits the compact record form: groupId, artifactId and version
// are always present, scope only when it is not the default.
func (d *DependencyMetadata) MarshalJSON() ([]byte, error) {
	out := struct {
		GroupID    string `json:"groupId"`
		ArtifactID string `json:"artifactId"`
		Version    string `json:"version"`
		Scope      string `json:"scope,omitempty"`
	}{
		GroupID:    d.coord.Group,
		ArtifactID: d.coord.Artifact,
		Version:    d.coord.Version,
	}
	if !d.HasDefaultScope() {
		out.Scope = d.scope.String()
	}
	return json.Marshal(out)
}
