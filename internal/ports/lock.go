package ports

import "pkgresolver/internal/types"

// LockWriterPort writes a resolved Solution to a lock artifact.
// LockFileAdapter is the only implementation: a local YAML file.
type LockWriterPort interface {
	WriteLock(path string, solution types.Solution) error
}
