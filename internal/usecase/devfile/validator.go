package devfile

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/getkin/kin-openapi/openapi3"
	"gopkg.in/yaml.v3"

	"github.com/bnema/devfile-wizard/internal/domain"
)

//go:embed schema/devfile.openapi.json
var schemaDocument []byte

const (
	schemaName = "Devfile"

	// minSchemaVersion accepts every 2.x release, pre-releases included.
	minSchemaVersion = ">= 2.0.0-0"

	schemaVersionExample = "2.2.0"
)

// Validator decides whether raw devfile content is acceptable. It is safe for
// concurrent use once built.
type Validator struct {
	schema     *openapi3.Schema
	constraint *semver.Constraints
}

// NewValidator loads the embedded devfile schema.
func NewValidator(ctx context.Context) (*Validator, error) {
	loader := openapi3.NewLoader()
	loader.Context = ctx

	doc, err := loader.LoadFromData(schemaDocument)
	if err != nil {
		return nil, fmt.Errorf("devfile schema: load document: %w", err)
	}
	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("devfile schema: validate: %w", err)
	}

	ref, ok := doc.Components.Schemas[schemaName]
	if !ok || ref == nil || ref.Value == nil {
		return nil, fmt.Errorf("devfile schema: %s schema not found", schemaName)
	}

	constraint, err := semver.NewConstraint(minSchemaVersion)
	if err != nil {
		return nil, fmt.Errorf("devfile schema: version constraint: %w", err)
	}

	return &Validator{schema: ref.Value, constraint: constraint}, nil
}

// Validate checks raw and, when it is acceptable, returns the parsed
// document. Anything that does not pass every check is rejected.
func (v *Validator) Validate(raw []byte) domain.Validation {
	var tree any
	if err := yaml.Unmarshal(raw, &tree); err != nil {
		return domain.Invalid(fmt.Sprintf("malformed YAML: %v", err))
	}
	if _, ok := tree.(map[string]any); !ok {
		return domain.Invalid("document is not a mapping")
	}

	// The schema visitor works on JSON types.
	encoded, err := json.Marshal(tree)
	if err != nil {
		return domain.Invalid(fmt.Sprintf("unsupported value: %v", err))
	}
	var doc map[string]any
	if err := json.Unmarshal(encoded, &doc); err != nil {
		return domain.Invalid(fmt.Sprintf("unsupported value: %v", err))
	}

	// YAML reads an unquoted 2.2 as a number, which the schema would only
	// report as a type mismatch.
	if version, ok := doc["schemaVersion"]; ok && version != nil {
		if _, isString := version.(string); !isString {
			return domain.Invalid(fmt.Sprintf("schemaVersion must be a string such as %q, got %v: quote the value, e.g. schemaVersion: %q",
				schemaVersionExample, version, schemaVersionExample))
		}
	}

	if err := v.schema.VisitJSON(doc); err != nil {
		return domain.Invalid(schemaReason(err))
	}

	version, _ := doc["schemaVersion"].(string)
	parsed, err := semver.NewVersion(version)
	if err != nil {
		return domain.Invalid(fmt.Sprintf("schemaVersion %q is not a semantic version, expected MAJOR.MINOR.PATCH such as %q", version, schemaVersionExample))
	}
	if !v.constraint.Check(parsed) {
		return domain.Invalid(fmt.Sprintf("schemaVersion %s is not supported, 2.0.0 or later is required", version))
	}

	devfile, err := Parse(raw)
	if err != nil {
		return domain.Invalid(err.Error())
	}
	return domain.ValidDevfile(devfile)
}

func schemaReason(err error) string {
	var schemaErr *openapi3.SchemaError
	if !errors.As(err, &schemaErr) {
		return err.Error()
	}
	pointer := schemaErr.JSONPointer()
	if len(pointer) == 0 {
		return schemaErr.Reason
	}
	return fmt.Sprintf("%s: %s", strings.Join(pointer, "."), schemaErr.Reason)
}
