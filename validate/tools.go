package validate

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/flightdesk/types"
)

// Validator checks tool-call arguments against the parameter schema each tool
// advertises. Schemas are compiled once.
type Validator struct {
	schemas map[string]*gojsonschema.Schema
}

// NewValidator compiles the parameter schema of every definition.
func NewValidator(defs []types.ToolDefinition) (*Validator, error) {
	v := &Validator{schemas: make(map[string]*gojsonschema.Schema, len(defs))}
	for _, def := range defs {
		schema, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(def.Parameters))
		if err != nil {
			return nil, fmt.Errorf("internal schema error for tool '%s': %w", def.Name, err)
		}
		v.schemas[def.Name] = schema
	}
	return v, nil
}

// ValidateArguments reports ErrUnknownTool for names without a schema and
// ErrInvalidToolArguments when raw is not a JSON document matching the
// tool's schema or carries hidden unicode.
func (v *Validator) ValidateArguments(name string, raw []byte) error {
	schema, ok := v.schemas[name]
	if !ok {
		return fmt.Errorf("%w: '%s'", types.ErrUnknownTool, name)
	}

	if found := DetectHiddenUnicode(string(raw)); len(found) > 0 {
		return fmt.Errorf("%w: tool '%s': hidden %s character %s at byte %d",
			types.ErrInvalidToolArguments, name, found[0].Category, found[0].Hex, found[0].Index)
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		// gojsonschema fails here when raw is not JSON at all.
		return fmt.Errorf("%w: tool '%s': %v", types.ErrInvalidToolArguments, name, err)
	}

	if !result.Valid() {
		var validationErrors []string
		for _, desc := range result.Errors() {
			validationErrors = append(validationErrors, desc.String())
		}
		return fmt.Errorf("%w: tool '%s': %s",
			types.ErrInvalidToolArguments, name, strings.Join(validationErrors, "; "))
	}
	return nil
}
