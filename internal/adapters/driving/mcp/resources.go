package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/issuefeed/internal/core/domain"
)

const (
	// URIScheme is the custom URI scheme for issuefeed resources.
	uriScheme = "issuefeed://"
)

// hostInfo is the JSON form of a host profile.
type hostInfo struct {
	Name         string `json:"name"`
	Family       string `json:"family"`
	APIHost      string `json:"api_host"`
	GitHost      string `json:"git_host"`
	IssuesPath   string `json:"api_issues"`
	CommentsPath string `json:"api_comments"`
}

func newHostInfo(p domain.HostProfile) hostInfo {
	return hostInfo{
		Name:         p.Name,
		Family:       p.Family.String(),
		APIHost:      p.APIHost,
		GitHost:      p.GitHost,
		IssuesPath:   p.IssuesPath,
		CommentsPath: p.CommentsPath,
	}
}

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "hosts",
		Name:        "hosts",
		Description: "Host types usable as host_type",
		MIMEType:    "application/json",
	}, s.handleHostsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "hosts/{name}",
		Name:        "host",
		Description: "Endpoints of a single host type",
		MIMEType:    "application/json",
	}, s.handleHostResource)
}

// handleHostsResource returns every known host profile.
func (s *Server) handleHostsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	profiles := s.ports.Hosts.Profiles()

	infos := make([]hostInfo, len(profiles))
	for i, p := range profiles {
		infos[i] = newHostInfo(p)
	}

	return jsonResource(req.Params.URI, infos)
}

// handleHostResource returns a single host profile.
func (s *Server) handleHostResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	name := extractHostName(req.Params.URI)
	if name == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	for _, p := range s.ports.Hosts.Profiles() {
		if p.Name == name {
			return jsonResource(req.Params.URI, newHostInfo(p))
		}
	}
	return nil, mcp.ResourceNotFoundError(req.Params.URI)
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractHostName extracts the host name from a URI like issuefeed://hosts/{name}.
func extractHostName(uri string) string {
	const prefix = uriScheme + "hosts/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	name := strings.TrimPrefix(uri, prefix)
	if strings.Contains(name, "/") {
		return ""
	}
	return name
}
