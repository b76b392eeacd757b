package migration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMigration(t *testing.T) {
	t.Run("creates an up and down pair", func(t *testing.T) {
		dir := t.TempDir()

		mf, err := CreateMigration(dir, "create invoicing tables")
		require.NoError(t, err)

		assert.FileExists(t, mf.UpPath)
		assert.FileExists(t, mf.DownPath)
		assert.Contains(t, filepath.Base(mf.UpPath), "create_invoicing_tables.up.sql")
		assert.Contains(t, filepath.Base(mf.DownPath), "create_invoicing_tables.down.sql")
		assert.Len(t, mf.Version, 14)
	})

	t.Run("creates the directory when missing", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "migrations")

		mf, err := CreateMigration(dir, "initial")
		require.NoError(t, err)
		assert.FileExists(t, mf.UpPath)
	})
}

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"spaces to underscores", "create invoicing tables", "create_invoicing_tables"},
		{"mixed case lowered", "Add Invoice Index", "add_invoice_index"},
		{"special characters dropped", "add-status!@#column", "add_statuscolumn"},
		{"collapses repeated separators", "a  - _ b", "a_b"},
		{"trailing separator trimmed", "drop table ", "drop_table"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizeName(tt.input))
		})
	}
}

func TestListMigrations(t *testing.T) {
	t.Run("lists up migration base names", func(t *testing.T) {
		dir := t.TempDir()
		files := []string{
			"20260101000000_first.up.sql",
			"20260101000000_first.down.sql",
			"20260102000000_second.up.sql",
			"20260102000000_second.down.sql",
		}
		for _, f := range files {
			require.NoError(t, os.WriteFile(filepath.Join(dir, f), []byte("-- sql"), 0644))
		}

		migrations, err := ListMigrations(dir)
		require.NoError(t, err)
		assert.Equal(t, []string{"20260101000000_first", "20260102000000_second"}, migrations)
	})

	t.Run("missing directory yields empty list", func(t *testing.T) {
		migrations, err := ListMigrations(filepath.Join(t.TempDir(), "absent"))
		require.NoError(t, err)
		assert.Empty(t, migrations)
	})
}
