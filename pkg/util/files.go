package util

import (
	"path/filepath"
	"strings"
)

// SafeFilePath cleans a relative path and reports whether it stays inside
// the directory it is resolved against. Empty, absolute and escaping paths
// are rejected.
func SafeFilePath(p string) (string, bool) {
	cleaned, ok := SafeFilePathAllowAbsolute(p)
	if !ok || filepath.IsAbs(cleaned) {
		return "", false
	}
	return cleaned, true
}

// SafeFilePathAllowAbsolute is like SafeFilePath but accepts absolute paths.
func SafeFilePathAllowAbsolute(p string) (string, bool) {
	if p == "" {
		return "", false
	}
	cleaned := filepath.Clean(p)
	if escapes(cleaned) {
		return "", false
	}
	return cleaned, true
}

// escapes reports whether any segment of p is "..". Backslashes count as
// separators so Windows-style paths are checked on every platform.
func escapes(p string) bool {
	segments := strings.FieldsFunc(p, func(r rune) bool {
		return r == '/' || r == '\\'
	})
	for _, seg := range segments {
		if seg == ".." {
			return true
		}
	}
	return false
}

// ResolveFile resolves name against baseDir. Absolute names are used as
// given; relative names must not escape baseDir.
func ResolveFile(baseDir, name string) (string, bool) {
	if filepath.IsAbs(name) {
		return SafeFilePathAllowAbsolute(name)
	}
	rel, ok := SafeFilePath(name)
	if !ok {
		return "", false
	}
	return filepath.Join(baseDir, rel), true
}
