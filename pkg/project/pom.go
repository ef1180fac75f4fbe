package project

import (
	"encoding/xml"
	"path/filepath"
	"strings"

	"fractionbom/pkg/errors"
)

// decodePOM turns raw pom.xml bytes into a Project. baseDir is the directory
// the POM lives in; relative source directories are resolved against it.
func decodePOM(data []byte, baseDir string) (*Project, error) {
	var pom pomProject
	if err := xml.Unmarshal(data, &pom); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPOM, err, "cannot decode %s", filepath.Join(baseDir, "pom.xml"))
	}

	p := &Project{
		GroupID:     pom.GroupID,
		ArtifactID:  pom.ArtifactID,
		Version:     pom.Version,
		Packaging:   pom.Packaging,
		Name:        strings.TrimSpace(pom.Name),
		Description: strings.TrimSpace(pom.Description),
		Properties:  pom.Properties,
		Modules:     pom.Modules,
		BaseDir:     baseDir,
	}

	// Group and version inherit from the parent when undeclared.
	if pom.Parent != nil {
		if p.GroupID == "" {
			p.GroupID = pom.Parent.GroupID
		}
		if p.Version == "" {
			p.Version = pom.Parent.Version
		}
	}
	if p.Packaging == "" {
		p.Packaging = "jar"
	}
	if p.ArtifactID == "" {
		return nil, errors.New(errors.ErrCodeInvalidPOM, "%s declares no artifactId", filepath.Join(baseDir, "pom.xml"))
	}

	srcDir := pom.Build.SourceDirectory
	if srcDir == "" {
		srcDir = filepath.Join("src", "main", "java")
	}
	if !filepath.IsAbs(srcDir) {
		srcDir = filepath.Join(baseDir, srcDir)
	}
	p.SourceDir = srcDir

	for _, d := range pom.Dependencies {
		dep := Dependency{
			GroupID:    d.GroupID,
			ArtifactID: d.ArtifactID,
			Version:    d.Version,
			Classifier: d.Classifier,
			Type:       d.Type,
			Scope:      d.Scope,
		}
		if dep.Type == "" {
			dep.Type = "jar"
		}
		p.Dependencies = append(p.Dependencies, dep)
	}

	return p, nil
}

type pomProject struct {
	GroupID      string          `xml:"groupId"`
	ArtifactID   string          `xml:"artifactId"`
	Version      string          `xml:"version"`
	Packaging    string          `xml:"packaging"`
	Name         string          `xml:"name"`
	Description  string          `xml:"description"`
	Parent       *pomParent      `xml:"parent"`
	Properties   pomProperties   `xml:"properties"`
	Dependencies []pomDependency `xml:"dependencies>dependency"`
	Modules      []string        `xml:"modules>module"`
	Build        pomBuild        `xml:"build"`
}

type pomParent struct {
	GroupID    string `xml:"groupId"`
	ArtifactID string `xml:"artifactId"`
	Version    string `xml:"version"`
}

type pomDependency struct {
	GroupID    string  `xml:"groupId"`
	ArtifactID string  `xml:"artifactId"`
	Version    string  `xml:"version"`
	Classifier *string `xml:"classifier"`
	Type       string  `xml:"type"`
	Scope      string  `xml:"scope"`
}

type pomBuild struct {
	SourceDirectory string `xml:"sourceDirectory"`
}

// pomProperties decodes the free-form <properties> block into a string map.
type pomProperties map[string]string

func (p *pomProperties) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	*p = make(map[string]string)
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			var value string
			if err := d.DecodeElement(&value, &t); err != nil {
				return err
			}
			(*p)[t.Name.Local] = strings.TrimSpace(value)
		case xml.EndElement:
			if t.Name == start.Name {
				return nil
			}
		}
	}
}
