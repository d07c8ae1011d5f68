package driving

import "github.com/custodia-labs/issuefeed/internal/core/domain"

// HostRegistry maps host type names to forge endpoints.
type HostRegistry interface {
	// Profiles returns every known host profile, sorted by name.
	Profiles() []domain.HostProfile

	// Resolve returns the profile of hostType with overrides applied.
	Resolve(hostType string, overrides domain.HostOverrides) (domain.HostProfile, error)
}
