package fraction

// Classifier is an optional artifact classifier. The zero value means "no
// classifier", which is deliberately distinct from an explicitly empty one so
// the two never collide as map keys.
type Classifier struct {
	Value string
	Set   bool
}

// NewClassifier returns a present classifier with the given value.
func NewClassifier(value string) Classifier {
	return Classifier{Value: value, Set: true}
}

// String renders the classifier for composite keys. An absent classifier
// renders as "<none>" so it cannot be confused with an empty string value.
func (c Classifier) String() string {
	if !c.Set {
		return "<none>"
	}
	return c.Value
}

// Coordinate identifies a published build artifact. It is a pure value type:
// two coordinates are equal iff all five fields match exactly, which makes it
// usable directly as a map key.
type Coordinate struct {
	Group      string
	Artifact   string
	Version    string
	Classifier Classifier
	Packaging  string
}

// String returns the composite key form group:artifact:version:classifier:packaging.
func (c Coordinate) String() string {
	return c.Group + ":" + c.Artifact + ":" + c.Version + ":" + c.Classifier.String() + ":" + c.Packaging
}

// GroupArtifact names a module by its group and artifact ids, ignoring
// version. Used for well-known module exclusions in [Config].
type GroupArtifact struct {
	Group    string
	Artifact string
}

// matches reports whether the pair is set and equals the given ids.
func (ga GroupArtifact) matches(group, artifact string) bool {
	return ga != GroupArtifact{} && ga.Group == group && ga.Artifact == artifact
}
