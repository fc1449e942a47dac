package domain

import (
	"log/slog"
	"math"

	"fortio.org/safecast"
	"github.com/cespare/xxhash/v2"

	m "mapwright.dev/pkg/mapwright/internal/model"
)

const (
	// maxReferenceProbes bounds the linear probe for a free reference.
	maxReferenceProbes = 0xFFFF
	referenceMask      = math.MaxInt32
)

// allocateReference derives a reference id from url. The same url always
// starts probing at the same id, so breakpoints set on path-less sources keep
// matching after a reconnect. inUse reports ids held by live sources; the
// sentinel zero is never handed out.
func allocateReference(url string, inUse func(m.ReferenceID) bool) m.ReferenceID {
	start := int64(uint32(xxhash.Sum64String(url)) & referenceMask)
	candidate := start

	for range maxReferenceProbes {
		ref, err := toReference(candidate)
		if err == nil && ref != m.NoReference && !inUse(ref) {
			return ref
		}

		candidate++
		if candidate > referenceMask {
			candidate = 0
		}
	}

	slog.Error("assertion failed: exhausted reference probes", "url", url, "probes", maxReferenceProbes)

	ref, err := toReference(start)
	if err != nil || ref == m.NoReference {
		return 1
	}

	return ref
}

func toReference(v int64) (m.ReferenceID, error) {
	n, err := safecast.Conv[int32](v)
	if err != nil {
		return m.NoReference, err
	}

	return m.ReferenceID(n), nil
}
