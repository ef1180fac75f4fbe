// Package project loads build-unit descriptors from Maven-style POM files.
//
// A [Project] is the neutral input record the fraction registry consumes:
// identity, declared properties, declared dependencies, and the base and
// source directories used for convention-based scans. [Loader] reads a
// single POM or walks a whole multi-module tree by following <modules>
// declarations, optionally caching decoded projects by content hash so
// repeated scans of a large tree skip XML decoding.
//
// The loader performs no dependency version resolution and no network
// access: versions are taken as written in the POM.
package project
