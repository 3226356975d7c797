package migration

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"add customers table", "add_customers_table"},
		{"Add-Customers-Table", "add_customers_table"},
		{"ADD_CUSTOMERS_TABLE", "add_customers_table"},
		{"Add Stock Settings 2", "add_stock_settings_2"},
		{"   spaces   ", "spaces"},
		{"special!@#$chars", "specialchars"},
		{"trailing_", "trailing"},
		{"_leading", "leading"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizeName(tt.input))
		})
	}
}

func TestCreateMigration(t *testing.T) {
	tmpDir := t.TempDir()

	upPath, downPath, err := CreateMigration(tmpDir, "add sale payments", "Track payments recorded against sales")
	require.NoError(t, err)

	upBase := strings.TrimSuffix(filepath.Base(upPath), ".up.sql")
	downBase := strings.TrimSuffix(filepath.Base(downPath), ".down.sql")
	assert.Equal(t, upBase, downBase)

	// version prefix is YYYYMMDDHHMMSS
	version := strings.SplitN(upBase, "_", 2)[0]
	assert.Len(t, version, 14)

	upContent, err := os.ReadFile(upPath)
	require.NoError(t, err)
	assert.Contains(t, string(upContent), "add sale payments")
	assert.Contains(t, string(upContent), "Track payments recorded against sales")
	assert.Contains(t, string(upContent), "Write your UP migration here")

	downContent, err := os.ReadFile(downPath)
	require.NoError(t, err)
	assert.Contains(t, string(downContent), "rollback")
	assert.Contains(t, string(downContent), "Write your DOWN migration here")
}

func TestCreateMigrationCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "migrations")

	upPath, _, err := CreateMigration(dir, "init", "")
	require.NoError(t, err)

	_, err = os.Stat(upPath)
	assert.NoError(t, err)
}

func TestListMigrations(t *testing.T) {
	tmpDir := t.TempDir()

	_, _, err := CreateMigration(tmpDir, "first", "")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "notes.txt"), []byte("x"), 0o644))

	files, err := ListMigrations(tmpDir)
	require.NoError(t, err)
	assert.Len(t, files, 2)
	for _, f := range files {
		assert.True(t, strings.HasSuffix(f, ".sql"))
	}

	missing, err := ListMigrations(filepath.Join(tmpDir, "does-not-exist"))
	require.NoError(t, err)
	assert.Nil(t, missing)
}
