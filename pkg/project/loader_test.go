package project

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"fractionbom/pkg/cache"
	"fractionbom/pkg/errors"
)

func writePOM(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "pom.xml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadFromDir(t *testing.T) {
	dir := t.TempDir()
	writePOM(t, dir, `<project>
  <groupId>com.example</groupId>
  <artifactId>foo</artifactId>
  <version>1.0</version>
</project>`)

	loader := NewLoader(nil, nil)
	p, err := loader.Load(context.Background(), dir)
	if err != nil {
		t.Fatal(err)
	}
	if p.ArtifactID != "foo" {
		t.Errorf("ArtifactID = %q", p.ArtifactID)
	}
	if p.BaseDir != dir {
		t.Errorf("BaseDir = %q, want %q", p.BaseDir, dir)
	}
}

func TestLoadMissing(t *testing.T) {
	loader := NewLoader(nil, nil)
	_, err := loader.Load(context.Background(), filepath.Join(t.TempDir(), "absent"))
	if errors.GetCode(err) != errors.ErrCodeFileNotFound {
		t.Errorf("err = %v, want %s", err, errors.ErrCodeFileNotFound)
	}
}

func TestLoadUsesCache(t *testing.T) {
	dir := t.TempDir()
	writePOM(t, dir, `<project>
  <groupId>com.example</groupId>
  <artifactId>foo</artifactId>
  <version>1.0</version>
</project>`)

	c, err := cache.NewFileCache(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	loader := NewLoader(c, nil)
	first, err := loader.Load(context.Background(), dir)
	if err != nil {
		t.Fatal(err)
	}
	second, err := loader.Load(context.Background(), dir)
	if err != nil {
		t.Fatal(err)
	}
	if second.ArtifactID != first.ArtifactID || second.BaseDir != first.BaseDir {
		t.Errorf("cached load = %+v, want %+v", second, first)
	}
}

func TestLoadTree(t *testing.T) {
	root := t.TempDir()
	writePOM(t, root, `<project>
  <groupId>com.example</groupId>
  <artifactId>parent</artifactId>
  <version>1.0</version>
  <packaging>pom</packaging>
  <modules>
    <module>alpha</module>
    <module>beta</module>
  </modules>
</project>`)
	writePOM(t, filepath.Join(root, "alpha"), `<project>
  <parent>
    <groupId>com.example</groupId>
    <artifactId>parent</artifactId>
    <version>1.0</version>
  </parent>
  <artifactId>alpha</artifactId>
</project>`)
	writePOM(t, filepath.Join(root, "beta"), `<project>
  <parent>
    <groupId>com.example</groupId>
    <artifactId>parent</artifactId>
    <version>1.0</version>
  </parent>
  <artifactId>beta</artifactId>
  <modules>
    <module>gamma</module>
  </modules>
</project>`)
	writePOM(t, filepath.Join(root, "beta", "gamma"), `<project>
  <parent>
    <groupId>com.example</groupId>
    <artifactId>parent</artifactId>
    <version>1.0</version>
  </parent>
  <artifactId>gamma</artifactId>
</project>`)

	loader := NewLoader(nil, nil)
	projects, err := loader.LoadTree(context.Background(), root)
	if err != nil {
		t.Fatal(err)
	}

	var got []string
	for _, p := range projects {
		got = append(got, p.ArtifactID)
	}
	want := []string{"parent", "alpha", "beta", "gamma"}
	if len(got) != len(want) {
		t.Fatalf("LoadTree order = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("LoadTree order = %v, want %v", got, want)
		}
	}
}

func TestLoadTreeSkipsBrokenModule(t *testing.T) {
	root := t.TempDir()
	writePOM(t, root, `<project>
  <groupId>com.example</groupId>
  <artifactId>parent</artifactId>
  <version>1.0</version>
  <modules>
    <module>missing</module>
    <module>ok</module>
  </modules>
</project>`)
	writePOM(t, filepath.Join(root, "ok"), `<project>
  <groupId>com.example</groupId>
  <artifactId>ok</artifactId>
  <version>1.0</version>
</project>`)

	loader := NewLoader(nil, nil)
	projects, err := loader.LoadTree(context.Background(), root)
	if err != nil {
		t.Fatal(err)
	}
	if len(projects) != 2 || projects[1].ArtifactID != "ok" {
		t.Errorf("projects = %v, want parent then ok", projects)
	}
}

func TestLoadTreeBrokenRoot(t *testing.T) {
	root := t.TempDir()
	writePOM(t, root, `<project><groupId>g</groupId></project>`)

	loader := NewLoader(nil, nil)
	if _, err := loader.LoadTree(context.Background(), root); err == nil {
		t.Fatal("a broken root must fail the whole load")
	}
}
