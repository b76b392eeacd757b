package migration

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const upHeader = `-- Migration: %s
-- Created: %s

`

const downHeader = `-- Migration: %s (rollback)
-- Created: %s

`

// MigrationFile describes a created up/down migration pair
type MigrationFile struct {
	Version  string
	Name     string
	UpPath   string
	DownPath string
}

// CreateMigration creates an empty timestamped up/down migration pair
func CreateMigration(migrationsDir, name string) (*MigrationFile, error) {
	if err := os.MkdirAll(migrationsDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create migrations directory: %w", err)
	}

	now := time.Now()
	// YYYYMMDDHHMMSS versions sort lexically
	version := now.Format("20060102150405")
	timestamp := now.Format(time.RFC3339)

	baseName := fmt.Sprintf("%s_%s", version, sanitizeName(name))
	mf := &MigrationFile{
		Version:  version,
		Name:     name,
		UpPath:   filepath.Join(migrationsDir, baseName+".up.sql"),
		DownPath: filepath.Join(migrationsDir, baseName+".down.sql"),
	}

	if err := os.WriteFile(mf.UpPath, []byte(fmt.Sprintf(upHeader, name, timestamp)), 0644); err != nil {
		return nil, fmt.Errorf("failed to create up migration: %w", err)
	}
	if err := os.WriteFile(mf.DownPath, []byte(fmt.Sprintf(downHeader, name, timestamp)), 0644); err != nil {
		_ = os.Remove(mf.UpPath)
		return nil, fmt.Errorf("failed to create down migration: %w", err)
	}

	return mf, nil
}

// sanitizeName lowercases a migration name and collapses separators to
// single underscores
func sanitizeName(name string) string {
	var b strings.Builder
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'a' && c <= 'z' || c >= '0' && c <= '9':
			b.WriteByte(c)
		case c >= 'A' && c <= 'Z':
			b.WriteByte(c + 'a' - 'A')
		case c == ' ' || c == '-' || c == '_':
			s := b.String()
			if len(s) > 0 && s[len(s)-1] != '_' {
				b.WriteByte('_')
			}
		}
	}
	return strings.TrimSuffix(b.String(), "_")
}

// ListMigrations lists the base names of migration pairs in a directory
func ListMigrations(migrationsDir string) ([]string, error) {
	entries, err := os.ReadDir(migrationsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to read migrations directory: %w", err)
	}

	migrations := make([]string, 0)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if base, ok := strings.CutSuffix(entry.Name(), ".up.sql"); ok {
			migrations = append(migrations, base)
		}
	}
	return migrations, nil
}
