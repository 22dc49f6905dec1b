package resource

import "strings"

const (
	// fnvOffset and fnvPrime are the 64-bit FNV-1a parameters used for
	// engine resource path hashing.
	fnvOffset = uint64(0xcbf29ce484222325)
	fnvPrime  = uint64(0x100000001b3)
)

// Path identifies an engine resource by its depot path. Construction
// normalizes the raw string to the engine's canonical form so equal resources
// compare and hash equally regardless of how call sites spelled the path.
type Path struct {
	normalized string
}

// NewPath builds a Path from a raw depot path. Normalization lowercases the
// path, converts forward slashes to backslashes, collapses repeated
// separators, and trims surrounding whitespace and separators.
func NewPath(raw string) Path {
	return Path{normalized: normalize(raw)}
}

// String returns the normalized depot path.
func (p Path) String() string { return p.normalized }

// IsEmpty reports whether the path identifies no resource.
func (p Path) IsEmpty() bool { return p.normalized == "" }

// Hash returns the engine's 64-bit FNV-1a hash of the normalized path.
// The empty path hashes to zero, matching the engine's sentinel for
// "no resource".
func (p Path) Hash() uint64 {
	if p.normalized == "" {
		return 0
	}

	h := fnvOffset
	for i := 0; i < len(p.normalized); i++ {
		h ^= uint64(p.normalized[i])
		h *= fnvPrime
	}
	return h
}

// AsyncRef references a resource for deferred resolution. Only the path is
// carried; resolution itself is performed by the engine runtime, outside
// this module.
type AsyncRef struct {
	Path Path
}

// NewAsyncRef builds an AsyncRef for the given path.
func NewAsyncRef(p Path) AsyncRef {
	return AsyncRef{Path: p}
}

func normalize(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "/", `\`)

	// Collapse repeated separators.
	for strings.Contains(s, `\\`) {
		s = strings.ReplaceAll(s, `\\`, `\`)
	}

	return strings.Trim(s, `\`)
}
