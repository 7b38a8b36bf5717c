// Package pathutil splits and joins slash-separated paths with the exact
// rules the rename flow needs. path/filepath is deliberately not used:
// filepath.Split keeps the trailing separator on the directory and
// filepath.Join cleans the result, both of which break the round-trip
// contract between Split and Join.
package pathutil

import (
	"fmt"
	"strings"
)

// DirFilename is the result of splitting a path at its last slash.
type DirFilename struct {
	Directory string
	Filename  string
}

// StripTrailingSlashes removes every trailing '/' from path. It is
// idempotent and may return the empty string.
func StripTrailingSlashes(path string) string {
	return strings.TrimRight(path, "/")
}

// Split divides path at its last '/'. Everything after the slash is the
// filename, everything before it (exclusive) is the directory. A path
// without a slash has an empty directory.
//
// Split does not normalize: a path ending in '/' yields an empty
// filename. Callers strip trailing slashes first.
func Split(path string) DirFilename {
	idx := strings.LastIndexByte(path, '/')
	if idx < 0 {
		return DirFilename{Directory: "", Filename: path}
	}
	return DirFilename{Directory: path[:idx], Filename: path[idx+1:]}
}

// Join reassembles a path from a directory and a filename.
//
//	Join("", f)  == f
//	Join(d, "")  == d
//	Join(d, f)   == d + "/" + f
//
// The directory must not end in '/'; passing one is a programming error
// and panics.
func Join(directory, filename string) string {
	if directory == "" {
		return filename
	}
	if strings.HasSuffix(directory, "/") {
		panic(fmt.Sprintf("pathutil: directory %q ends with a slash", directory))
	}
	if filename == "" {
		return directory
	}
	return directory + "/" + filename
}
