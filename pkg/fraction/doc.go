// Package fraction extracts and cross-references metadata for "fractions":
// independently addressable build units inside a multi-module source tree
// that contribute optional runtime capability to an assembled application.
//
// # Overview
//
// The package is organized around a handful of value types and one stateful
// registry:
//
//   - [Coordinate]: the (group, artifact, version, classifier, packaging)
//     identity tuple used as a map key everywhere
//   - [DependencyMetadata]: an immutable resolved dependency plus its [Scope]
//   - [FractionMetadata]: the frozen description of one build unit
//   - [Registry]: the per-build-pass cache that derives and memoizes
//     FractionMetadata on demand
//
// # Resolving a build unit
//
// Create one Registry per build pass and feed it projects:
//
//	reg := fraction.NewRegistry(fraction.Config{
//	    RootModule: fraction.GroupArtifact{Group: "com.example", Artifact: "root"},
//	})
//	meta := reg.Resolve(proj)
//	if meta == nil {
//	    // not a fraction (or the root module)
//	}
//
// Derivation walks the unit's source tree for a file matching the fraction
// suffix, reads classification properties, merges a previously persisted
// build manifest, and resolves declared compile dependencies against a
// shared pool so that equal coordinates share one DependencyMetadata
// instance. Each coordinate is derived at most once; later calls are cache
// hits.
//
// # Failure policy
//
// Filesystem problems during derivation are logged and degrade to "nothing
// found" rather than failing the build pass. Only caller contract violations
// (a malformed coordinate string handed to [ParseDependency]) surface as
// errors.
package fraction
