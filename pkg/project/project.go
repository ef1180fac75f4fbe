package project

// Dependency is one declared dependency as written in a project file.
// Classifier is nil when the declaration has no classifier element, which is
// distinct from an empty one. Scope is the raw declared string; consumers
// normalize it.
type Dependency struct {
	GroupID    string  `json:"groupId"`
	ArtifactID string  `json:"artifactId"`
	Version    string  `json:"version"`
	Classifier *string `json:"classifier,omitempty"`
	Type       string  `json:"type"` // packaging type, "jar" when undeclared
	Scope      string  `json:"scope,omitempty"`
}

// Project describes one build unit of a multi-module tree. It is a plain
// data record: the fraction registry derives everything else from it.
type Project struct {
	GroupID     string `json:"groupId"`
	ArtifactID  string `json:"artifactId"`
	Version     string `json:"version"`
	Packaging   string `json:"packaging"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`

	Properties   map[string]string `json:"properties,omitempty"`
	Dependencies []Dependency      `json:"dependencies,omitempty"`
	Modules      []string          `json:"modules,omitempty"`

	// BaseDir is the directory containing the project file. SourceDir is
	// the root of the unit's implementation sources (src/main/java by
	// convention unless the project declares otherwise).
	BaseDir   string `json:"baseDir"`
	SourceDir string `json:"sourceDir"`
}
