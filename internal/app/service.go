package app

import (
	"pkgresolver/internal/adapters"
	"pkgresolver/internal/ports"
)

// Service wires the manifest/lock ports the CLI use cases depend on.
type Service struct {
	ManifestLoader ports.ManifestPort
	LockWriter     ports.LockWriterPort
}

func NewService() Service {
	return Service{
		ManifestLoader: adapters.NewManifestFileAdapter(),
		LockWriter:     adapters.NewLockFileAdapter(),
	}
}
