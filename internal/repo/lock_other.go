//go:build !unix

package repo

// lockFile is a no-op where flock is unavailable; the repository mutex still
// serializes writers inside the process.
func lockFile(string) (func(), error) {
	return func() {}, nil
}
