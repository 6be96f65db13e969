package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.yaml.in/yaml/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schema/forge.schema.json
var schemaBytes []byte

var printer = message.NewPrinter(language.English)

var loadSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
	if err != nil {
		return nil, fmt.Errorf("unmarshaling schema JSON: %w", err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource("forge.schema.json", doc); err != nil {
		return nil, fmt.Errorf("adding schema resource: %w", err)
	}
	return c.Compile("forge.schema.json")
})

// Issue is one schema violation. Key is the dotted config key it concerns,
// e.g. "shaders.sources.0.output", or "" for the document itself.
type Issue struct {
	Key     string
	Message string
}

func (i Issue) String() string {
	if i.Key == "" {
		return i.Message
	}
	return i.Key + ": " + i.Message
}

// InvalidError is returned when a config file does not match the schema.
type InvalidError struct {
	File   string
	Issues []Issue
}

func (e *InvalidError) Error() string {
	var b strings.Builder
	b.WriteString(printer.Sprintf("%s has %d validation issue(s):", e.File, len(e.Issues)))
	for _, issue := range e.Issues {
		b.WriteString("\n  - " + issue.String())
	}
	return b.String()
}

// Validate checks forge.yaml content against the schema and returns the
// violations, sorted by key. The error return is for unparsable YAML.
func Validate(data []byte) ([]Issue, error) {
	schema, err := loadSchema()
	if err != nil {
		return nil, fmt.Errorf("loading schema: %w", err)
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	inst, err := toJSONValue(doc)
	if err != nil {
		return nil, err
	}

	var ve *jsonschema.ValidationError
	if err := schema.Validate(inst); !errors.As(err, &ve) {
		return nil, err
	}

	issues := make(map[Issue]struct{})
	leafIssues(ve, issues)
	out := make([]Issue, 0, len(issues))
	for issue := range issues {
		out = append(out, issue)
	}
	if len(out) == 0 {
		out = append(out, Issue{Message: ve.Error()})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Key != out[j].Key {
			return out[i].Key < out[j].Key
		}
		return out[i].Message < out[j].Message
	})
	return out, nil
}

// ValidateFile reads path and validates it.
func ValidateFile(path string) ([]Issue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return Validate(data)
}

// toJSONValue re-encodes a decoded YAML document into the value model the
// schema validator expects. An empty document is an empty mapping.
func toJSONValue(doc any) (any, error) {
	if doc == nil {
		doc = map[string]any{}
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("converting to JSON: %w", err)
	}
	return jsonschema.UnmarshalJSON(bytes.NewReader(raw))
}

func leafIssues(ve *jsonschema.ValidationError, into map[Issue]struct{}) {
	for _, cause := range ve.Causes {
		leafIssues(cause, into)
	}
	if len(ve.Causes) > 0 || ve.ErrorKind == nil {
		return
	}
	into[Issue{
		Key:     strings.Join(ve.InstanceLocation, "."),
		Message: ve.ErrorKind.LocalizedString(printer),
	}] = struct{}{}
}
