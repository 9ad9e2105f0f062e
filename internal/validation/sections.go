// Package validation checks the free-form nested section payloads
// (statistics, partners, donors, slides) against JSON schemas before they
// reach storage, so malformed editor payloads fail loudly instead of being
// persisted as-is.
package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

var (
	ErrSchemaInvalid    = errors.New("validation: schema invalid")
	ErrSchemaValidation = errors.New("validation: payload failed schema validation")
)

// ValidationIssue captures a single validation failure.
type ValidationIssue struct {
	Location string `json:"location"`
	Message  string `json:"message"`
}

// PayloadValidationError surfaces validation issues with schema-aware context.
type PayloadValidationError struct {
	Issues []ValidationIssue
	Cause  error
}

func (e *PayloadValidationError) Error() string {
	if len(e.Issues) == 0 {
		if e.Cause != nil {
			return e.Cause.Error()
		}
		return ErrSchemaValidation.Error()
	}
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		location := strings.TrimSpace(issue.Location)
		if location == "" {
			location = "#"
		}
		if issue.Message == "" {
			parts = append(parts, location)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", location, issue.Message))
	}
	return strings.Join(parts, "; ")
}

func (e *PayloadValidationError) Unwrap() error {
	return ErrSchemaValidation
}

// Issues extracts validation issues from an error.
func Issues(err error) []ValidationIssue {
	if err == nil {
		return nil
	}
	var payloadErr *PayloadValidationError
	if errors.As(err, &payloadErr) && payloadErr != nil {
		return payloadErr.Issues
	}
	var validationErr *jsonschema.ValidationError
	if errors.As(err, &validationErr) && validationErr != nil {
		return collectValidationIssues(validationErr)
	}
	return []ValidationIssue{{Message: err.Error()}}
}

// sectionEntrySchema validates partner/donor/funder/beneficiary entries.
var sectionEntrySchema = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type":     "object",
		"required": []any{"nameEn", "nameAr"},
		"properties": map[string]any{
			"id":       map[string]any{"type": "string"},
			"nameEn":   map[string]any{"type": "string"},
			"nameAr":   map[string]any{"type": "string"},
			"imageUrl": map[string]any{"type": "string"},
		},
		"additionalProperties": false,
	},
}

// statisticSchema validates statistic/cost/deliverable entries.
var statisticSchema = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type":     "object",
		"required": []any{"titleEn", "titleAr", "value"},
		"properties": map[string]any{
			"id":      map[string]any{"type": "string"},
			"titleEn": map[string]any{"type": "string"},
			"titleAr": map[string]any{"type": "string"},
			"value":   map[string]any{"type": "number"},
			"unitEn":  map[string]any{"type": "string"},
			"unitAr":  map[string]any{"type": "string"},
		},
		"additionalProperties": false,
	},
}

// slideSchema validates slide entries.
var slideSchema = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type":     "object",
		"required": []any{"titleEn", "titleAr", "imageUrl"},
		"properties": map[string]any{
			"id":       map[string]any{"type": "string"},
			"titleEn":  map[string]any{"type": "string"},
			"titleAr":  map[string]any{"type": "string"},
			"imageUrl": map[string]any{"type": "string"},
			"linkUrl":  map[string]any{"type": "string"},
			"position": map[string]any{"type": "integer"},
		},
		"additionalProperties": false,
	},
}

// sectionSchemas maps camelCase payload keys onto their schema.
var sectionSchemas = map[string]map[string]any{
	"goals":            sectionEntrySchema,
	"partners":         sectionEntrySchema,
	"donors":           sectionEntrySchema,
	"fundingProviders": sectionEntrySchema,
	"beneficiaries":    sectionEntrySchema,
	"statistics":       statisticSchema,
	"costs":            statisticSchema,
	"deliverables":     statisticSchema,
	"slides":           slideSchema,
}

// SectionSchemas returns the JSON schema document for every known section
// key, keyed by the camelCase payload field. Callers get fresh top-level
// maps so registry adapters can annotate them.
func SectionSchemas() map[string]map[string]any {
	out := make(map[string]map[string]any, len(sectionSchemas))
	for key, schema := range sectionSchemas {
		doc := make(map[string]any, len(schema))
		for k, v := range schema {
			doc[k] = v
		}
		out[key] = doc
	}
	return out
}

// ValidateSections checks every known section key present in the decoded
// payload. Unknown keys are ignored here; the merge-patch layer drops them.
func ValidateSections(payload map[string]any) error {
	for key, schema := range sectionSchemas {
		raw, ok := payload[key]
		if !ok || raw == nil {
			continue
		}
		if err := validateValue(schema, raw); err != nil {
			return err
		}
	}
	return nil
}

func validateValue(schema map[string]any, value any) error {
	compiled, err := compileSchema(schema)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSchemaInvalid, err)
	}
	if err := compiled.Validate(value); err != nil {
		return &PayloadValidationError{
			Issues: Issues(err),
			Cause:  err,
		}
	}
	return nil
}

func compileSchema(schema map[string]any) (*jsonschema.Schema, error) {
	encoded, err := json.Marshal(schema)
	if err != nil {
		return nil, err
	}
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource("schema.json", bytes.NewReader(encoded)); err != nil {
		return nil, err
	}
	return compiler.Compile("schema.json")
}

func collectValidationIssues(err *jsonschema.ValidationError) []ValidationIssue {
	if err == nil {
		return nil
	}
	issues := []ValidationIssue{}
	var walk func(*jsonschema.ValidationError)
	walk = func(node *jsonschema.ValidationError) {
		if node == nil {
			return
		}
		if len(node.Causes) == 0 {
			issues = append(issues, ValidationIssue{
				Location: strings.TrimSpace(node.InstanceLocation),
				Message:  strings.TrimSpace(node.Message),
			})
			return
		}
		for _, cause := range node.Causes {
			walk(cause)
		}
	}
	walk(err)
	return issues
}
