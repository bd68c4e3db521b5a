package agent

import (
	"encoding/json"
	"fmt"

	"github.com/hupe1980/agentrun/internal/util"
	"github.com/xeipuuv/gojsonschema"
)

// OutputType declares the structured-output contract of an agent. A final
// response only terminates the run when it validates against the schema;
// validation failures are fed back to the model as an intermediate turn.
type OutputType struct {
	name     string
	schema   map[string]any
	compiled *gojsonschema.Schema
}

// NewOutputType constructs an output contract from an explicit JSON schema.
func NewOutputType(name string, schema map[string]any) (*OutputType, error) {
	compiled, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(schema))
	if err != nil {
		return nil, fmt.Errorf("compile output schema %q: %w", name, err)
	}
	return &OutputType{name: name, schema: schema, compiled: compiled}, nil
}

// NewOutputTypeFromStruct derives the contract schema from a struct using
// reflection, mirroring tool.NewFromStruct.
func NewOutputTypeFromStruct(name string, structType any) (*OutputType, error) {
	return NewOutputType(name, util.CreateSchema(structType))
}

// MustOutputType is like NewOutputType but panics on a malformed schema.
// Intended for package-level contract declarations.
func MustOutputType(name string, schema map[string]any) *OutputType {
	ot, err := NewOutputType(name, schema)
	if err != nil {
		panic(err)
	}
	return ot
}

// Name returns the contract's identifier exposed to the model.
func (o *OutputType) Name() string { return o.name }

// Schema returns the declared JSON schema.
func (o *OutputType) Schema() map[string]any { return o.schema }

// Validate checks a candidate payload against the schema. The returned error
// describes the first violation and is suitable as model feedback.
func (o *OutputType) Validate(raw json.RawMessage) error {
	if len(raw) == 0 {
		return fmt.Errorf("output %q: empty payload", o.name)
	}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("output %q: invalid JSON: %w", o.name, err)
	}

	result, err := o.compiled.Validate(gojsonschema.NewGoLoader(v))
	if err != nil {
		return fmt.Errorf("output %q: %w", o.name, err)
	}
	if !result.Valid() {
		first := result.Errors()[0]
		return fmt.Errorf("output %q: field %s: %s", o.name, first.Field(), first.Description())
	}
	return nil
}
