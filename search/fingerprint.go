package search

import (
	"crypto/sha256"
	"encoding/hex"
	"maps"
	"slices"
)

// computeFingerprint generates a stable hash of the document slice.
// The fingerprint changes when document content changes, enabling
// efficient cache invalidation for the BM25 index.
func computeFingerprint(docs []Doc) string {
	h := sha256.New()

	for _, doc := range docs {
		h.Write([]byte(doc.ID))
		h.Write([]byte{0}) // separator

		// Fields in sorted key order so map iteration order cannot
		// change the fingerprint.
		for _, key := range slices.Sorted(maps.Keys(doc.Fields)) {
			h.Write([]byte(key))
			h.Write([]byte{1})
			h.Write([]byte(doc.Fields[key]))
			h.Write([]byte{0})
		}
		h.Write([]byte{0})
	}

	return hex.EncodeToString(h.Sum(nil))
}
