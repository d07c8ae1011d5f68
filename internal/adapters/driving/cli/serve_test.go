package cli

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServeCmd_Flags(t *testing.T) {
	for _, name := range []string{"addr", "rate", "burst", "watch"} {
		assert.NotNil(t, serveCmd.Flags().Lookup(name), name)
	}
}

func TestServeCmd_StopsWithContext(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()
	resetFlags(rootCmd)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	rootCmd.SetArgs([]string{"serve", "--addr", "127.0.0.1:0", "--rate", "5"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.ExecuteContext(ctx)

	assert.NoError(t, err)
}

func TestServeCmd_WatchUnsupported(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	_, err := executeCommand("serve", "--addr", "127.0.0.1:0", "--watch")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "--watch")
}

func TestStringSetting(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()
	resetFlags(rootCmd)

	assert.Equal(t, ":8000", stringSetting(serveCmd, "addr", configKeyServerAddr, ":8000"))

	require.NoError(t, ts.config.Set(configKeyServerAddr, ":9000"))
	assert.Equal(t, ":9000", stringSetting(serveCmd, "addr", configKeyServerAddr, ":8000"))

	require.NoError(t, serveCmd.Flags().Set("addr", ":7000"))
	assert.Equal(t, ":7000", stringSetting(serveCmd, "addr", configKeyServerAddr, ":8000"))
	resetFlags(rootCmd)
}
