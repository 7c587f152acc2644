package ports

// Digester defines the interface for computing content digests.
//
//go:generate go run go.uber.org/mock/mockgen -source=digester.go -destination=mocks/mock_digester.go -package=mocks
type Digester interface {
	// Sum returns the hex digest of content under the named algorithm,
	// truncated to at most length characters. The digest is always computed
	// in full before truncation. Empty content yields an empty string.
	Sum(content []byte, algorithm string, length int) (string, error)

	// Algorithms returns the sorted names of every supported algorithm.
	Algorithms() []string
}
