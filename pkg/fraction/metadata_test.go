package fraction

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestBuilderDependencyDedup(t *testing.T) {
	key := Coordinate{Group: "com.example", Artifact: "foo", Version: "1.0", Packaging: "jar"}
	b := newMetadataBuilder(key, ScopeCompile)

	first := NewDependency("com.example", "bar", "1.0", Classifier{}, "jar", "compile")
	second := NewDependency("com.example", "bar", "1.0", Classifier{}, "jar", "runtime")
	other := NewDependency("com.example", "baz", "1.0", Classifier{}, "jar", "compile")

	b.addDependency(first)
	b.addDependency(other)
	b.addDependency(second) // equal coordinate, replaces first in place

	deps := b.build().Dependencies()
	if len(deps) != 2 {
		t.Fatalf("Dependencies = %d, want 2", len(deps))
	}
	if deps[0] != second {
		t.Error("a later equal-coordinate descriptor must replace the earlier one")
	}
	if deps[1] != other {
		t.Error("dedup must not disturb declaration order of distinct keys")
	}
}

func TestBuilderClassifierDistinguishesDeps(t *testing.T) {
	key := Coordinate{Group: "com.example", Artifact: "foo", Version: "1.0", Packaging: "jar"}
	b := newMetadataBuilder(key, ScopeCompile)

	plain := NewDependency("com.example", "bar", "1.0", Classifier{}, "jar", "compile")
	sources := NewDependency("com.example", "bar", "1.0", NewClassifier("sources"), "jar", "compile")
	b.addDependency(plain)
	b.addDependency(sources)

	if got := len(b.build().Dependencies()); got != 2 {
		t.Errorf("Dependencies = %d, want 2 distinct entries", got)
	}
}

func TestMetadataAccessorsReturnCopies(t *testing.T) {
	key := Coordinate{Group: "com.example", Artifact: "foo", Version: "1.0", Packaging: "jar"}
	b := newMetadataBuilder(key, ScopeCompile)
	b.setTags([]string{"web", "core"})
	b.addDetector(DetectorFile{Rel: "detect/A.java", Abs: "/tmp/detect/A.java"})
	meta := b.build()

	meta.Tags()[0] = "mutated"
	if meta.Tags()[0] != "web" {
		t.Error("Tags must return a copy")
	}
	meta.DetectorFiles()[0].Rel = "mutated"
	if meta.DetectorFiles()[0].Rel != "detect/A.java" {
		t.Error("DetectorFiles must return a copy")
	}
}

func TestMetadataMarshalJSON(t *testing.T) {
	key := Coordinate{Group: "com.example", Artifact: "foo", Version: "1.0", Packaging: "jar"}
	b := newMetadataBuilder(key, ScopeCompile)
	b.setTags([]string{"web"})
	meta := b.build()

	data, err := json.Marshal(meta)
	if err != nil {
		t.Fatal(err)
	}
	s := string(data)
	for _, want := range []string{`"groupId":"com.example"`, `"artifactId":"foo"`, `"version":"1.0"`, `"tags":["web"]`} {
		if !strings.Contains(s, want) {
			t.Errorf("JSON %s missing %s", s, want)
		}
	}
	// Defaults stay out of the record form.
	for _, banned := range []string{`"scope"`, `"stability"`, `"internal"`} {
		if strings.Contains(s, banned) {
			t.Errorf("JSON %s should omit default %s", s, banned)
		}
	}

	b = newMetadataBuilder(key, ScopeProvided)
	b.setStability(StabilityStable)
	b.setInternal(true)
	data, err = json.Marshal(b.build())
	if err != nil {
		t.Fatal(err)
	}
	s = string(data)
	for _, want := range []string{`"scope":"provided"`, `"stability":"stable"`, `"internal":true`} {
		if !strings.Contains(s, want) {
			t.Errorf("JSON %s missing %s", s, want)
		}
	}
}

func TestManifestMerge(t *testing.T) {
	p := testProject(t, "com.example", "foo", "1.0")
	addSource(t, p, "com/example/FooFraction.java", "")
	manifest := filepath.Join(p.BaseDir, "target", "classes", "META-INF", "fraction-manifest.yaml")
	if err := os.MkdirAll(filepath.Dir(manifest), 0755); err != nil {
		t.Fatal(err)
	}
	content := "transitive-dependencies:\n" +
		"  - com.example:alpha:jar:1.0\n" +
		"  - not-a-coordinate\n" +
		"  - com.example:beta:jar:extra:2.0\n" +
		"  - com.example:alpha:jar:1.0\n"
	if err := os.WriteFile(manifest, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	reg := NewRegistry(Config{})
	meta := reg.Resolve(p)
	if meta == nil {
		t.Fatal("expected a fraction")
	}

	trans := meta.TransitiveDependencies()
	if len(trans) != 2 {
		t.Fatalf("TransitiveDependencies = %d, want 2 (bad entry skipped, duplicate merged)", len(trans))
	}
	if trans[0].ArtifactID() != "alpha" || trans[1].ArtifactID() != "beta" {
		t.Errorf("TransitiveDependencies = %v, %v", trans[0], trans[1])
	}
	if got := trans[1].Classifier(); !got.Set || got.Value != "extra" {
		t.Errorf("beta classifier = %v, want extra", got)
	}
}

func TestManifestMalformedIsSkipped(t *testing.T) {
	p := testProject(t, "com.example", "foo", "1.0")
	addSource(t, p, "com/example/FooFraction.java", "")
	manifest := filepath.Join(p.BaseDir, "target", "classes", "META-INF", "fraction-manifest.yaml")
	if err := os.MkdirAll(filepath.Dir(manifest), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(manifest, []byte("{not yaml: ["), 0644); err != nil {
		t.Fatal(err)
	}

	reg := NewRegistry(Config{})
	meta := reg.Resolve(p)
	if meta == nil {
		t.Fatal("a broken manifest must not fail derivation")
	}
	if got := meta.TransitiveDependencies(); len(got) != 0 {
		t.Errorf("TransitiveDependencies = %v, want none", got)
	}
}
