package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractHostName(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		expected string
	}{
		{name: "valid URI", uri: "issuefeed://hosts/gitea", expected: "gitea"},
		{name: "missing name", uri: "issuefeed://hosts/", expected: ""},
		{name: "wrong scheme", uri: "http://hosts/gitea", expected: ""},
		{name: "nested path", uri: "issuefeed://hosts/gitea/extra", expected: ""},
		{name: "hosts list", uri: "issuefeed://hosts", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractHostName(tt.uri))
		})
	}
}

func makeReadResourceRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{
			URI: uri,
		},
	}
}

func TestServer_handleHostsResource(t *testing.T) {
	server := newTestServer(t, &mockFeedService{})

	result, err := server.handleHostsResource(context.Background(), makeReadResourceRequest("issuefeed://hosts"))

	require.NoError(t, err)
	require.Len(t, result.Contents, 1)
	assert.Equal(t, "application/json", result.Contents[0].MIMEType)

	var infos []hostInfo
	require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &infos))
	require.Len(t, infos, 2)
	assert.Equal(t, "gitea", infos[0].Name)
	assert.Equal(t, "gitea", infos[0].Family)
	assert.Equal(t, "/api/v1/repos/{repo}/issues", infos[0].IssuesPath)
	assert.Equal(t, "github", infos[1].Name)
}

func TestServer_handleHostResource(t *testing.T) {
	ctx := context.Background()
	server := newTestServer(t, &mockFeedService{})

	t.Run("known host", func(t *testing.T) {
		result, err := server.handleHostResource(ctx, makeReadResourceRequest("issuefeed://hosts/github"))

		require.NoError(t, err)
		var info hostInfo
		require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &info))
		assert.Equal(t, "api.github.com", info.APIHost)
		assert.Equal(t, "github.com", info.GitHost)
	})

	t.Run("unknown host returns not found", func(t *testing.T) {
		_, err := server.handleHostResource(ctx, makeReadResourceRequest("issuefeed://hosts/sourcehut"))
		assert.Error(t, err)
	})

	t.Run("invalid URI returns not found", func(t *testing.T) {
		_, err := server.handleHostResource(ctx, makeReadResourceRequest("issuefeed://other/github"))
		assert.Error(t, err)
	})
}
