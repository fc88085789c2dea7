package filter

import "strings"

// Resolve makes file absolute relative to the invocation's working
// directory. An already-absolute path is returned unchanged. The result is a
// plain concatenation: no lexical cleaning is applied, so "." and ".."
// segments survive exactly as the observed process used them.
func Resolve(file, cwd string) string {
	if strings.HasPrefix(file, "/") {
		return file
	}
	return cwd + "/" + file
}
