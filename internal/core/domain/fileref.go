package domain

// FileRef addresses a file to hash: either a bare path, or an in-memory
// buffer carrying an explicit path. The two cases are distinguished by
// construction rather than by probing, so an empty buffer is still a buffer.
type FileRef struct {
	path     string
	content  []byte
	buffered bool
}

// PathRef references a file on disk.
func PathRef(path string) FileRef {
	return FileRef{path: path}
}

// BufferRef references in-memory content with an explicit path.
func BufferRef(path string, content []byte) FileRef {
	return FileRef{path: path, content: content, buffered: true}
}

// Path returns the file path of the reference.
func (r FileRef) Path() string {
	return r.path
}

// Buffer returns the in-memory content and whether the reference carries one.
func (r FileRef) Buffer() ([]byte, bool) {
	return r.content, r.buffered
}
