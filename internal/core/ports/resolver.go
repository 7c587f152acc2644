package ports

// InputResolver defines the interface for expanding input addresses into
// concrete file paths.
//
//go:generate go run go.uber.org/mock/mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type InputResolver interface {
	// Resolve expands each input (a concrete path, a glob pattern, or a
	// directory) into base-relative file paths, preserving input order.
	// A non-glob input that does not exist passes through unchanged so the
	// engine can report it as a no-content record.
	Resolve(inputs []string, base string) ([]string, error)
}
