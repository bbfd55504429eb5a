// Package testutil provides shared test helpers.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteTestConfig writes a config file with the given database name into
// tmpDir and returns its path.
func WriteTestConfig(t *testing.T, tmpDir, dbName string) string {
	t.Helper()

	content := fmt.Sprintf(`database:
  host: localhost
  port: 3306
  database: %s
  username: testuser
session:
  idle_timeout_seconds: 300
  reap_interval_seconds: 60
quiz:
  distractor_count: 3
  min_options: 4
storage:
  timeout_seconds: 5
`, dbName)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0o644))
	return cfgPath
}
