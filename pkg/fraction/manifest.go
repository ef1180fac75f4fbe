package fraction

import (
	"os"

	"gopkg.in/yaml.v3"
)

// buildManifest is the recognized shape of the persisted build manifest a
// prior build phase writes under the unit's build output. Unknown keys are
// ignored.
type buildManifest struct {
	TransitiveDependencies []string `yaml:"transitive-dependencies"`
}

// mergeManifest reads the persisted manifest at path, if any, and merges its
// transitive-dependencies entries into the builder. All failures here are
// non-fatal: a missing file is silence, an unreadable or malformed one is
// logged and skipped, and a single bad entry skips only that entry.
func (r *Registry) mergeManifest(b *metadataBuilder, path string) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return
	}
	if err != nil {
		r.log.Warn("cannot read build manifest", "path", path, "err", err)
		return
	}

	var manifest buildManifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		r.log.Warn("malformed build manifest", "path", path, "err", err)
		return
	}

	for _, entry := range manifest.TransitiveDependencies {
		dep, err := ParseDependency(entry)
		if err != nil {
			r.log.Warn("skipping manifest entry", "path", path, "err", err)
			continue
		}
		b.addTransitive(dep)
	}
}
