// Package catalogfile loads destination catalogs from JSON files, checking
// them against an embedded JSON Schema before decoding.
package catalogfile

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/xeipuuv/gojsonschema"

	"soulprint/internal/matching"
)

//go:embed schema.json
var schemaJSON string

var (
	schemaLoader = gojsonschema.NewStringLoader(schemaJSON)
	validate     = validator.New()
)

// FieldError is a single schema violation at a document path.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError lists every schema violation found in a catalog.
type ValidationError struct {
	Errors []FieldError
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("catalog validation failed:\n")
	for i, err := range ve.Errors {
		fmt.Fprintf(&sb, "  %d. %s: %s\n", i+1, err.Field, err.Message)
	}
	return sb.String()
}

// Validate checks raw catalog JSON against the schema.
func Validate(data []byte) error {
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("catalog: %w", err)
	}
	if result.Valid() {
		return nil
	}

	ve := &ValidationError{Errors: make([]FieldError, 0, len(result.Errors()))}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		ve.Errors = append(ve.Errors, FieldError{Field: field, Message: desc.Description()})
	}
	return ve
}

// Parse validates and decodes a catalog. Destination ids must be unique.
func Parse(data []byte) ([]matching.DestinationProfile, error) {
	if err := Validate(data); err != nil {
		return nil, err
	}

	var catalog []matching.DestinationProfile
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("catalog: decode: %w", err)
	}

	seen := make(map[string]struct{}, len(catalog))
	for i := range catalog {
		if err := validate.Struct(catalog[i]); err != nil {
			return nil, fmt.Errorf("catalog: destination %d: %w", i, err)
		}
		if _, dup := seen[catalog[i].ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate destination id %q", catalog[i].ID)
		}
		seen[catalog[i].ID] = struct{}{}
	}
	return catalog, nil
}

// Load reads and parses the catalog at path.
func Load(path string) ([]matching.DestinationProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	return Parse(data)
}
