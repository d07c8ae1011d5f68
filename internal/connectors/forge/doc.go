// Package forge implements driven.IssueTracker against the issue REST API
// of a Git forge.
//
// Two API families are supported:
//
//   - github: api.github.com and GitHub Enterprise (page size in per_page)
//   - gitea: Gitea and Forgejo instances such as Codeberg (page size in limit)
//
// Requests and responses go through go-github's client plumbing, so
// upstream error bodies and rate limit responses are decoded the same way
// for every family. Each Client serves a single host profile and is built
// per feed request by Factory; no client state, such as observed rate
// limits, is shared between requests.
//
// Errors are translated into the domain taxonomy:
//
//   - non-success responses: [domain.UpstreamStatusError]
//   - payloads that are not the expected JSON: [domain.DecodeError]
//   - everything else (refused connection, timeout): [domain.TransportError]
package forge
