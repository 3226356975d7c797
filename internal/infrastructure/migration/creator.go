package migration

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"
	"time"
)

const (
	upTemplate = `-- Migration: {{.Name}}
-- Created: {{.Timestamp}}
{{if .Description}}-- Description: {{.Description}}{{end}}

-- Write your UP migration here
`

	downTemplate = `-- Migration: {{.Name}} (rollback)
-- Created: {{.Timestamp}}

-- Write your DOWN migration here
`
)

type migrationData struct {
	Name        string
	Timestamp   string
	Description string
}

// CreateMigration creates a new pair of up/down migration files
func CreateMigration(dir, name, description string) (string, string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", "", fmt.Errorf("failed to create migrations directory: %w", err)
	}

	version := time.Now().UTC().Format("20060102150405")
	base := fmt.Sprintf("%s_%s", version, sanitizeName(name))

	upPath := filepath.Join(dir, base+".up.sql")
	downPath := filepath.Join(dir, base+".down.sql")

	data := migrationData{
		Name:        name,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		Description: description,
	}

	if err := createMigrationFile(upPath, upTemplate, data); err != nil {
		return "", "", err
	}
	if err := createMigrationFile(downPath, downTemplate, data); err != nil {
		os.Remove(upPath)
		return "", "", err
	}

	return upPath, downPath, nil
}

func createMigrationFile(path, tmpl string, data migrationData) error {
	t, err := template.New("migration").Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse migration template: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create migration file %s: %w", path, err)
	}
	defer f.Close()

	if err := t.Execute(f, data); err != nil {
		return fmt.Errorf("failed to write migration file %s: %w", path, err)
	}
	return nil
}

// sanitizeName converts a migration name to a filesystem-safe snake_case form
func sanitizeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '-', r == '_':
			b.WriteRune('_')
		}
	}
	return strings.Trim(b.String(), "_")
}

// ListMigrations returns the sorted list of migration files in dir
func ListMigrations(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read migrations directory: %w", err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.HasSuffix(e.Name(), ".sql") {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)
	return files, nil
}
