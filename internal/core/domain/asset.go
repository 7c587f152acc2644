// Package domain contains the core types for asset hashing.
package domain

// AssetRecord describes the current hashing state of one source file.
// Paths are slash-separated and relative to the configured base directory.
type AssetRecord struct {
	// Original is the path of the source file. It is the identity key.
	Original string `json:"original"`
	// Path is the currently valid artifact path. It equals Original when the
	// file has not been hashed.
	Path string `json:"path"`
	// Hash is the hash-key-prefixed digest currently associated with the
	// source, or empty if the file has never produced a hash.
	Hash string `json:"hash,omitempty"`
	// Hashed reports whether Path differs from Original due to hashing.
	Hashed bool `json:"hashed"`
	// Type is the file extension without the leading dot.
	Type string `json:"type,omitempty"`
}

// RecordPatch carries a partial update for an AssetRecord. Nil fields are
// left unchanged.
type RecordPatch struct {
	Path   *string
	Hash   *string
	Hashed *bool
	Type   *string
}

// Library maps original source paths to their current AssetRecord. It is the
// in-memory source of truth mirrored to the manifest file. A Library is owned
// by a single engine instance; there is no concurrent mutation path.
type Library struct {
	assets map[string]AssetRecord
}

// NewLibrary creates an empty Library.
func NewLibrary() *Library {
	return &Library{assets: make(map[string]AssetRecord)}
}

// All returns the live mapping, not a copy.
func (l *Library) All() map[string]AssetRecord {
	return l.assets
}

// Get retrieves the record for an original path.
func (l *Library) Get(original string) (AssetRecord, bool) {
	rec, ok := l.assets[original]
	return rec, ok
}

// Put inserts or replaces the record keyed by its Original path. Records
// without an Original path are ignored.
func (l *Library) Put(rec AssetRecord) {
	if rec.Original == "" {
		return
	}
	l.assets[rec.Original] = rec
}

// Update merges the patch into an existing record. It reports whether a
// record was found; updating an absent record is a no-op.
func (l *Library) Update(original string, patch RecordPatch) bool {
	rec, ok := l.assets[original]
	if !ok {
		return false
	}
	if patch.Path != nil {
		rec.Path = *patch.Path
	}
	if patch.Hash != nil {
		rec.Hash = *patch.Hash
	}
	if patch.Hashed != nil {
		rec.Hashed = *patch.Hashed
	}
	if patch.Type != nil {
		rec.Type = *patch.Type
	}
	l.assets[original] = rec
	return true
}

// Reset clears the library and returns the now-empty mapping.
func (l *Library) Reset() map[string]AssetRecord {
	l.assets = make(map[string]AssetRecord)
	return l.assets
}

// Len returns the number of records.
func (l *Library) Len() int {
	return len(l.assets)
}
