package fetch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// Schema files expected in the schema directory, keyed by the fixture kind
// they validate.
const (
	schemaSearch          = "search-response.schema.json"
	schemaItem            = "item-details.schema.json"
	schemaItemDescription = "item-description.schema.json"
)

// validateFixtureDir checks every *.json fixture against the schema for its
// naming convention. Fixtures with no matching schema are skipped.
func validateFixtureDir(dir, schemaDir string) error {
	schemas := map[string]*gojsonschema.Schema{}
	for kind, file := range map[string]string{
		"search":      schemaSearch,
		"item":        schemaItem,
		"description": schemaItemDescription,
	} {
		path := filepath.Join(schemaDir, file)
		if _, err := os.Stat(path); err != nil {
			continue // schema is optional
		}
		schema, err := gojsonschema.NewSchema(gojsonschema.NewReferenceLoader("file://" + absPath(path)))
		if err != nil {
			return fmt.Errorf("load schema %s: %w", file, err)
		}
		schemas[kind] = schema
	}
	if len(schemas) == 0 {
		return nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read fixture dir: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		schema, ok := schemas[fixtureKind(entry.Name())]
		if !ok {
			continue
		}

		doc := gojsonschema.NewReferenceLoader("file://" + absPath(filepath.Join(dir, entry.Name())))
		result, err := schema.Validate(doc)
		if err != nil {
			return fmt.Errorf("validate fixture %s: %w", entry.Name(), err)
		}
		if !result.Valid() {
			msgs := make([]string, 0, len(result.Errors()))
			for _, e := range result.Errors() {
				msgs = append(msgs, e.String())
			}
			return fmt.Errorf("fixture %s does not match schema: %s", entry.Name(), strings.Join(msgs, "; "))
		}
	}
	return nil
}

func fixtureKind(name string) string {
	switch {
	case strings.HasSuffix(name, "-description.json"):
		return "description"
	case strings.HasPrefix(name, "item-"):
		return "item"
	case strings.HasSuffix(name, "-query-list.json"):
		return "search"
	default:
		return ""
	}
}

func absPath(p string) string {
	abs, err := filepath.Abs(p)
	if err != nil {
		return p
	}
	return abs
}
