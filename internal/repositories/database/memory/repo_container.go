package memory

import (
	portsrepo "github.com/hpvvs/salesops_backend/internal/core/ports/repositories"
)

// NewRepositoryProvider backs every repository with process memory.
func NewRepositoryProvider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		LedgerRepo: NewLedgerRepository(),
	}
}
