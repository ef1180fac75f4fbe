package fraction

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// findFractionFile returns the path, relative to src, of the first file whose
// name ends in suffix, or "" when none exists. Traversal is lexical per
// filepath.WalkDir and stops at the first match, so when several files match
// the winner depends on directory layout; callers should not rely on a
// particular one. A missing src is not an error.
func findFractionFile(src, suffix string) (string, error) {
	if !dirExists(src) {
		return "", nil
	}
	var found string
	err := filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(d.Name(), suffix) {
			rel, rerr := filepath.Rel(src, path)
			if rerr != nil {
				return rerr
			}
			found = rel
			return fs.SkipAll
		}
		return nil
	})
	return found, err
}

// hasSourceFiles reports whether any file ending in suffix exists under src,
// ignoring everything below directories named detectDir. The walk stops at
// the first hit.
func hasSourceFiles(src, suffix, detectDir string) (bool, error) {
	if !dirExists(src) {
		return false, nil
	}
	var found bool
	err := filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == detectDir {
				return fs.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(d.Name(), suffix) {
			found = true
			return fs.SkipAll
		}
		return nil
	})
	return found, err
}

// collectDetectorFiles gathers every file below the first directory named
// detectDir under src, referenced by source-relative and absolute path. The
// outer walk ends as soon as that subtree has been read.
func collectDetectorFiles(src, detectDir string) ([]DetectorFile, error) {
	if !dirExists(src) {
		return nil, nil
	}
	var files []DetectorFile
	err := filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() || d.Name() != detectDir {
			return nil
		}
		werr := filepath.WalkDir(path, func(p string, de fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if de.IsDir() {
				return nil
			}
			rel, rerr := filepath.Rel(src, p)
			if rerr != nil {
				return rerr
			}
			files = append(files, DetectorFile{Rel: rel, Abs: p})
			return nil
		})
		if werr != nil {
			return werr
		}
		return fs.SkipAll
	})
	return files, err
}
