package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"text/template"

	"github.com/odingame/forge/internal/branding"
	"github.com/odingame/forge/internal/config"
)

//go:embed all:templates
var templateFS embed.FS

const templateRoot = "templates/project"

// Data holds the template variables available to project templates.
type Data struct {
	Name    string // game executable base name
	Version string
}

// Result holds the outcome of a scaffold generation.
type Result struct {
	OutputDir string
	Files     []string // slash-separated, relative to OutputDir
	Warnings  []string
}

// NewData returns Data for a project named name.
func NewData(name string) *Data {
	return &Data{Name: name, Version: "0.1.0"}
}

// Generate writes a new project into outputDir. Files ending in .tmpl are
// rendered with data; everything else is copied verbatim. outputDir must not
// already contain a config file.
func Generate(data *Data, outputDir string) (*Result, error) {
	if data.Name == "" {
		return nil, fmt.Errorf("project name is required")
	}
	if _, err := os.Stat(config.FilePath(outputDir)); err == nil {
		return nil, fmt.Errorf("project already initialized: %s exists", config.FilePath(outputDir))
	}

	result := &Result{OutputDir: outputDir}

	err := fs.WalkDir(templateFS, templateRoot, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel := strings.TrimPrefix(strings.TrimPrefix(p, templateRoot), "/")
		if rel == "" {
			return nil
		}
		outRel := strings.TrimSuffix(rel, ".tmpl")
		outPath := filepath.Join(outputDir, filepath.FromSlash(outRel))

		if d.IsDir() {
			return os.MkdirAll(outPath, 0755)
		}
		if _, err := os.Stat(outPath); err == nil {
			result.Warnings = append(result.Warnings, outRel+" exists, left unchanged")
			return nil
		}

		body, err := fs.ReadFile(templateFS, p)
		if err != nil {
			return fmt.Errorf("reading template %s: %w", p, err)
		}
		if path.Ext(rel) == ".tmpl" {
			body, err = render(rel, body, data)
			if err != nil {
				return err
			}
		}
		if err := os.WriteFile(outPath, body, 0644); err != nil {
			return fmt.Errorf("writing %s: %w", outPath, err)
		}
		result.Files = append(result.Files, outRel)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(result.Files)

	// Validate the generated config against the schema.
	configFile := config.FilePath(outputDir)
	issues, err := config.ValidateFile(configFile)
	if err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("Could not validate %s: %v", branding.ConfigFile(), err))
	}
	for _, issue := range issues {
		result.Warnings = append(result.Warnings, issue.String())
	}

	return result, nil
}

func render(name string, body []byte, data *Data) ([]byte, error) {
	tmpl, err := template.New(name).Parse(string(body))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}
