package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/slighter12/go-lib/database/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvKeyIndex_Resolve(t *testing.T) {
	idx := newEnvKeyIndex(map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pagination": map[string]any{
			"maxPageSize": 100,
		},
		"secretKey": map[string]any{
			"access": "",
		},
		"auth": map[string]any{
			"accessTokenTTL": "15m",
		},
	})

	tests := map[string]string{
		"POSTGRES_SSLMODE":         "postgres.sslMode",
		"POSTGRES_MASTER_USERNAME": "postgres.master.userName",
		"PAGINATION_MAXPAGESIZE":   "pagination.maxPageSize",
		"SECRETKEY_ACCESS":         "secretKey.access",
		"SECRETKEY_REFRESH":        "secretKey.refresh",
		"AUTH_ACCESSTOKENTTL":      "auth.accessTokenTTL",
		"RESPONSE__VERSION":        "response.version",
		"NEW_FEATURE_FLAG":         "new.feature.flag",
		"POSTGRES_REPLICAS_0_HOST": "postgres.replicas.0.host",
	}

	for envKey, want := range tests {
		t.Run(envKey, func(t *testing.T) {
			assert.Equal(t, want, idx.resolve(envKey))
		})
	}
}

func TestFindConfigFile(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "config")
	require.NoError(t, os.Mkdir(nested, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(nested, "app.yaml"), []byte("env: {}\n"), 0o600))
	t.Chdir(root)

	path, err := findConfigFile("app", []string{"config"})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "config", "app.yaml"), path)

	_, err = findConfigFile("app", nil)
	assert.ErrorContains(t, err, "config file app.yaml not found")
}

func TestReplicasFromEnv(t *testing.T) {
	t.Setenv("POSTGRES_REPLICAS_0_HOST", "replica-a")
	t.Setenv("POSTGRES_REPLICAS_0_PORT", "5432")
	t.Setenv("POSTGRES_REPLICAS_0_USERNAME", "reader")
	t.Setenv("POSTGRES_REPLICAS_1_HOST", "replica-b")
	t.Setenv("POSTGRES_REPLICAS_2_HOST", "replica-c")
	t.Setenv("POSTGRES_REPLICAS_2_PORT", "5433")

	assert.Equal(t, []postgres.ConnectionConfig{
		{Host: "replica-a", Port: "5432", UserName: "reader"},
	}, replicasFromEnv())
}
