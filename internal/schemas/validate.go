// Package schemas provides JSON Schema validation for the structured
// documents exchanged at the module boundary.
package schemas

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ResolveSchemaPath finds a schema file by trying the path relative to the
// working directory and then one and two levels up. CLI commands and tests
// run from different directories; the first existing candidate wins.
// Returns empty string if none exists.
func ResolveSchemaPath(relativePath string) string {
	candidates := []string{
		relativePath,
		filepath.Join("..", relativePath),
		filepath.Join("..", "..", relativePath),
	}
	for _, candidate := range candidates {
		if absPath, err := filepath.Abs(candidate); err == nil {
			if _, err := os.Stat(absPath); err == nil {
				return absPath
			}
		}
	}
	return ""
}

// ValidationError reports data that does not match the schema.
type ValidationError struct {
	Errors []FieldError
}

// FieldError is a single validation failure at a specific field.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// SchemaLoadError reports problems loading or parsing the schema itself,
// distinct from data that fails validation.
type SchemaLoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Path, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// ValidateBytes validates raw JSON data against a schema file.
func ValidateBytes(schemaPath string, data []byte) error {
	schemaAbsPath, err := filepath.Abs(schemaPath)
	if err != nil {
		return &SchemaLoadError{Path: schemaPath, Message: "failed to resolve path", Cause: err}
	}
	if _, err := os.Stat(schemaAbsPath); err != nil {
		return &SchemaLoadError{Path: schemaAbsPath, Message: "schema file not found", Cause: err}
	}

	schemaLoader := gojsonschema.NewReferenceLoader("file://" + schemaAbsPath)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &SchemaLoadError{Path: schemaAbsPath, Message: "validation could not run", Cause: err}
	}

	if !result.Valid() {
		ve := &ValidationError{}
		for _, desc := range result.Errors() {
			ve.Errors = append(ve.Errors, FieldError{
				Field:   desc.Field(),
				Message: desc.Description(),
			})
		}
		return ve
	}
	return nil
}

// ValidateJSON validates a JSON file against a schema file.
func ValidateJSON(schemaPath, jsonPath string) error {
	data, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("failed to read JSON file %s: %w", jsonPath, err)
	}
	return ValidateBytes(schemaPath, data)
}
