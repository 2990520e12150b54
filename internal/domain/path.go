package domain

import "strings"

// DirectoryPath returns the directory part of path, always '/' separated and
// ending with '/'. A path already ending with '/' is returned unchanged and a
// path without any '/' yields "".
//
//	"/a/b/c.so" -> "/a/b/"
//	"/a/b/"     -> "/a/b/"
//	"c.so"      -> ""
func DirectoryPath(path string) string {
	if path == "" || strings.HasSuffix(path, "/") {
		return path
	}

	idx := strings.LastIndexByte(path, '/')
	if idx < 0 {
		return ""
	}

	return path[:idx+1]
}

func ensureDirSuffix(dir string) string {
	if dir == "" || strings.HasSuffix(dir, "/") {
		return dir
	}

	return dir + "/"
}
