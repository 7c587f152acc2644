// Package digest implements the content digest provider.
package digest

import (
	"crypto"
	"encoding/hex"
	"hash"
	"sort"

	// Register the digest algorithms with the crypto provider.
	_ "crypto/md5"
	_ "crypto/sha1"
	_ "crypto/sha256"
	_ "crypto/sha512"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/stamp/internal/core/domain"
	"go.trai.ch/stamp/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Digester = (*Digester)(nil)

// cryptoNames maps algorithm names to the stdlib crypto provider. Only
// algorithms whose implementation is linked in are offered.
var cryptoNames = map[string]crypto.Hash{
	"md5":        crypto.MD5,
	"sha1":       crypto.SHA1,
	"sha224":     crypto.SHA224,
	"sha256":     crypto.SHA256,
	"sha384":     crypto.SHA384,
	"sha512":     crypto.SHA512,
	"sha512/224": crypto.SHA512_224,
	"sha512/256": crypto.SHA512_256,
}

// xxh64Name is the non-cryptographic fast path, the same content hash the
// build cache world uses.
const xxh64Name = "xxh64"

// Digester computes truncated hex digests of raw content.
type Digester struct{}

// New creates a new Digester.
func New() *Digester {
	return &Digester{}
}

func (d *Digester) newHash(algorithm string) (hash.Hash, error) {
	if algorithm == xxh64Name {
		return xxhash.New(), nil
	}
	if h, ok := cryptoNames[algorithm]; ok && h.Available() {
		return h.New(), nil
	}
	return nil, zerr.With(domain.ErrUnknownAlgorithm, "algorithm", algorithm)
}

// Sum returns the hex digest of content under the named algorithm, truncated
// to at most length characters. The full digest is computed first; truncation
// never re-hashes. Empty content yields an empty string.
func (d *Digester) Sum(content []byte, algorithm string, length int) (string, error) {
	if len(content) == 0 {
		return "", nil
	}

	h, err := d.newHash(algorithm)
	if err != nil {
		return "", err
	}

	if _, err := h.Write(content); err != nil {
		return "", zerr.Wrap(err, "failed to write content to digest")
	}

	digest := hex.EncodeToString(h.Sum(nil))
	if length > 0 && length < len(digest) {
		digest = digest[:length]
	}
	return digest, nil
}

// Algorithms returns the sorted names of every supported algorithm.
func (d *Digester) Algorithms() []string {
	names := make([]string, 0, len(cryptoNames)+1)
	for name, h := range cryptoNames {
		if h.Available() {
			names = append(names, name)
		}
	}
	names = append(names, xxh64Name)
	sort.Strings(names)
	return names
}
