package bundle

import (
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// Digest returns the blake3-256 hex digest of the bundle: each file's path
// and contents fed to the hasher in bundle order, NUL-separated. Identical
// bundles share a digest; any change to a path, content or position changes
// it.
func (b *Bundle) Digest() string {
	h := blake3.New()
	for _, f := range b.Files {
		h.Write([]byte(f.Path))
		h.Write([]byte{0})
		h.Write(f.Contents)
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}
