package bom

import (
	"strings"
	"testing"

	"fractionbom/pkg/fraction"
)

func TestGenerate(t *testing.T) {
	root := RootInfo{
		ArtifactID:  "example-bom",
		Name:        "Example BOM",
		Description: "All example fractions",
	}
	items := []*fraction.DependencyMetadata{
		fraction.NewDependency("com.example", "foo", "1.0", fraction.Classifier{}, "jar", "compile"),
		fraction.NewDependency("com.example", "bar", "2.0", fraction.Classifier{}, "jar", "provided"),
	}
	template := "artifact: #{bom-artifactId}\nname: #{bom-name}\ndesc: #{bom-description}\n#{dependencies}\n"

	out := Generate(root, template, items)

	for _, want := range []string{
		"artifact: example-bom",
		"name: Example BOM",
		"desc: All example fractions",
		"<artifactId>foo</artifactId>",
		"<artifactId>bar</artifactId>",
		"<scope>provided</scope>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	// Compile scope is the default and stays implicit.
	foo := out[:strings.Index(out, "bar")]
	if strings.Contains(foo, "<scope>") {
		t.Error("compile-scope dependency must not carry a scope element")
	}
	if strings.Contains(out, "#{") {
		t.Errorf("unsubstituted token left in output:\n%s", out)
	}
}

func TestGenerateDependencyBlockShape(t *testing.T) {
	items := []*fraction.DependencyMetadata{
		fraction.NewDependency("com.example", "foo", "1.0", fraction.Classifier{}, "jar", ""),
	}
	out := Generate(RootInfo{}, "#{dependencies}", items)

	want := "      <dependency>\n" +
		"        <groupId>com.example</groupId>\n" +
		"        <artifactId>foo</artifactId>\n" +
		"        <version>1.0</version>\n" +
		"      </dependency>"
	if out != want {
		t.Errorf("block = %q, want %q", out, want)
	}
}

func TestGenerateNoItems(t *testing.T) {
	out := Generate(RootInfo{ArtifactID: "bom"}, "deps:\n#{dependencies}\nend", nil)
	if out != "deps:\n\nend" {
		t.Errorf("output = %q", out)
	}
}
