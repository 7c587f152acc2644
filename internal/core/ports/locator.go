package ports

// StaleLocator defines the interface for finding previously generated hashed
// artifacts of a source file.
//
//go:generate go run go.uber.org/mock/mockgen -source=locator.go -destination=mocks/mock_locator.go -package=mocks
type StaleLocator interface {
	// Locate returns the paths in dir whose names match the hashed-artifact
	// shape for the given base name and extension: the template rendered
	// with the hash placeholder replaced by hashKey plus a wildcard. The
	// original un-hashed filename never matches because it does not contain
	// the hash key.
	Locate(dir, name, ext, template, hashKey string) ([]string, error)
}
