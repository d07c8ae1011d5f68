package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/custodia-labs/issuefeed/internal/core/domain"
	"github.com/custodia-labs/issuefeed/internal/core/ports/driven"
	"github.com/custodia-labs/issuefeed/internal/core/ports/driving"
	"github.com/custodia-labs/issuefeed/internal/logger"
)

// Ensure HostRegistry implements the interface.
var _ driving.HostRegistry = (*HostRegistry)(nil)

// hostsPrefix is the config table holding host profiles:
//
//	[hosts.codeberg]
//	family = "gitea"
//	api_host = "codeberg.org"
const hostsPrefix = "hosts."

// Keys of a [hosts.<name>] table.
const (
	hostKeyFamily      = "family"
	hostKeyAPIHost     = "api_host"
	hostKeyGitHost     = "git_host"
	hostKeyIssuesPath  = "api_issues"
	hostKeyCommentPath = "api_comments"
)

// HostRegistry resolves host types from the built-in table merged with
// the [hosts] tables of the configuration.
type HostRegistry struct {
	config driven.ConfigStore
}

// NewHostRegistry creates a host registry. config may be nil, in which
// case only the built-in host types are known.
func NewHostRegistry(config driven.ConfigStore) *HostRegistry {
	return &HostRegistry{config: config}
}

// Profiles returns every known host profile, sorted by name.
func (r *HostRegistry) Profiles() []domain.HostProfile {
	profiles := r.load()
	out := make([]domain.HostProfile, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Resolve returns the profile of hostType with overrides applied.
// Unknown host types fall back to GitHub.
func (r *HostRegistry) Resolve(hostType string, overrides domain.HostOverrides) (domain.HostProfile, error) {
	profiles := r.load()

	profile, ok := profiles[hostType]
	if !ok {
		logger.Warn("Unknown host type %q, using %s", hostType, domain.HostTypeGitHub)
		profile = profiles[domain.HostTypeGitHub]
	}

	profile = overrides.Apply(profile)
	if err := profile.Validate(); err != nil {
		return domain.HostProfile{}, err
	}
	return profile, nil
}

// load reads the profiles on every call so a reloaded config file takes
// effect immediately.
func (r *HostRegistry) load() map[string]domain.HostProfile {
	profiles := domain.DefaultHostProfiles()
	if r.config == nil {
		return profiles
	}

	for _, key := range r.config.Keys(hostsPrefix) {
		name, field, ok := strings.Cut(strings.TrimPrefix(key, hostsPrefix), ".")
		if !ok || name == "" {
			continue
		}

		p, exists := profiles[name]
		if !exists {
			p = domain.HostProfile{Name: name, Family: domain.FamilyGitHub}
		}

		value := r.config.GetString(key)
		switch field {
		case hostKeyFamily:
			family := domain.HostFamily(strings.ToLower(value))
			if !family.IsValid() {
				logger.Warn("Host %q: unknown family %q, keeping %s", name, value, p.Family)
				continue
			}
			p.Family = family
		case hostKeyAPIHost:
			p.APIHost = value
		case hostKeyGitHost:
			p.GitHost = value
		case hostKeyIssuesPath:
			p.IssuesPath = value
		case hostKeyCommentPath:
			p.CommentsPath = value
		default:
			logger.Warn("Host %q: ignoring unknown key %q", name, field)
			continue
		}
		profiles[name] = p
	}

	defaults := domain.DefaultHostProfiles()
	for name, p := range profiles {
		// Hosts added by configuration inherit the path templates of
		// their family.
		family := defaults[string(p.Family)]
		if p.IssuesPath == "" {
			p.IssuesPath = family.IssuesPath
		}
		if p.CommentsPath == "" {
			p.CommentsPath = family.CommentsPath
		}
		profiles[name] = p

		if err := p.Validate(); err != nil {
			logger.Warn("Ignoring host profile: %v", err)
			delete(profiles, name)
		}
	}
	return profiles
}

// HostConfigKey returns the config key of a host profile field.
func HostConfigKey(name, field string) string {
	return fmt.Sprintf("%s%s.%s", hostsPrefix, name, field)
}
