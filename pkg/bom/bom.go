// Package bom generates a bill-of-materials document from a template and a
// collection of dependency descriptors.
//
// Generation is a pure string substitution: the template's placeholder
// tokens are replaced with rendered dependency blocks and root-project
// metadata. No XML escaping is performed; callers supply pre-sanitized
// template and metadata strings.
package bom

import (
	"fmt"
	"strings"

	"fractionbom/pkg/fraction"
)

// Placeholder tokens recognized in templates.
const (
	TokenDependencies = "#{dependencies}"
	TokenArtifactID   = "#{bom-artifactId}"
	TokenName         = "#{bom-name}"
	TokenDescription  = "#{bom-description}"
)

// RootInfo carries the root project's metadata substituted into the
// generated document.
type RootInfo struct {
	ArtifactID  string
	Name        string
	Description string
}

// depTemplate renders one dependency block. The final %s carries the
// optional scope element, empty for compile scope.
const depTemplate = "      <dependency>\n        <groupId>%s</groupId>\n" +
	"        <artifactId>%s</artifactId>\n        <version>%s</version>%s\n      </dependency>"

// Generate substitutes the placeholder tokens in template with the rendered
// dependency blocks and root metadata, returning the finished document.
func Generate(root RootInfo, template string, items []*fraction.DependencyMetadata) string {
	blocks := make([]string, 0, len(items))
	for _, item := range items {
		blocks = append(blocks, depBlock(item))
	}

	out := strings.ReplaceAll(template, TokenDependencies, strings.Join(blocks, "\n"))
	out = strings.ReplaceAll(out, TokenArtifactID, root.ArtifactID)
	out = strings.ReplaceAll(out, TokenName, root.Name)
	return strings.ReplaceAll(out, TokenDescription, root.Description)
}

// depBlock renders one indented dependency element. The scope element is
// elided for the default (compile) scope.
func depBlock(d *fraction.DependencyMetadata) string {
	scope := ""
	if !d.HasDefaultScope() {
		scope = "\n        <scope>" + d.Scope().String() + "</scope>"
	}
	return fmt.Sprintf(depTemplate, d.GroupID(), d.ArtifactID(), d.Version(), scope)
}
