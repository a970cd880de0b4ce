package configcmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pressworks/wordpress-cli/internal/config"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, v := range []string{"WPP_SITE_URL", "WPP_USERNAME", "WPP_APP_PASSWORD", "WPP_DEFAULT_STATUS",
		"WORDPRESS_SITE_URL", "WORDPRESS_USERNAME", "WORDPRESS_APP_PASSWORD"} {
		t.Setenv(v, "")
		os.Unsetenv(v)
	}
}

func TestRunShow_WithConfigFile(t *testing.T) {
	clearEnv(t)

	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	cfg := &config.Config{
		SiteURL:       "https://blog.example.com",
		Username:      "testuser",
		AppPassword:   "abcd efgh ijkl mnop qrst",
		DefaultStatus: "draft",
	}
	require.NoError(t, cfg.Save(filepath.Join(tmpDir, "wpp", "config.yml")))

	err := runShow(true)
	require.NoError(t, err)
}

func TestRunShow_NoConfigFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	err := runShow(true)
	require.NoError(t, err)
}
