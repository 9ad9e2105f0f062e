package validation_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	crud "github.com/goliatone/go-crud"

	"github.com/amalfoundation/foundation-cms/internal/validation"
)

func decodePayload(t *testing.T, raw string) map[string]any {
	t.Helper()
	var payload map[string]any
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	return payload
}

func TestValidateSectionsAcceptsWellFormedPayload(t *testing.T) {
	payload := decodePayload(t, `{
		"titleEn": "Water Program",
		"partners": [{"nameEn": "Relief Org", "nameAr": "منظمة إغاثة", "imageUrl": "/img/relief.png"}],
		"statistics": [{"titleEn": "Wells", "titleAr": "آبار", "value": 12, "unitEn": "wells"}],
		"slides": [{"titleEn": "Opening", "titleAr": "افتتاح", "imageUrl": "/img/open.jpg", "position": 1}]
	}`)

	if err := validation.ValidateSections(payload); err != nil {
		t.Fatalf("expected valid payload, got %v", err)
	}
}

func TestValidateSectionsIgnoresUnknownAndNilKeys(t *testing.T) {
	payload := decodePayload(t, `{
		"sponsors": [{"bogus": true}],
		"partners": null
	}`)

	if err := validation.ValidateSections(payload); err != nil {
		t.Fatalf("unknown and nil keys must pass through, got %v", err)
	}
}

func TestValidateSectionsRejectsMissingRequiredFields(t *testing.T) {
	payload := decodePayload(t, `{
		"partners": [{"nameEn": "Relief Org"}]
	}`)

	err := validation.ValidateSections(payload)
	if err == nil {
		t.Fatal("expected validation failure")
	}
	var payloadErr *validation.PayloadValidationError
	if !errors.As(err, &payloadErr) {
		t.Fatalf("error type = %T", err)
	}
	if len(payloadErr.Issues) == 0 {
		t.Fatal("expected at least one issue")
	}
	if !strings.Contains(err.Error(), "nameAr") {
		t.Fatalf("error should name the missing field: %q", err.Error())
	}
}

func TestValidateSectionsRejectsExtraProperties(t *testing.T) {
	payload := decodePayload(t, `{
		"statistics": [{"titleEn": "Wells", "titleAr": "آبار", "value": 3, "color": "blue"}]
	}`)

	if err := validation.ValidateSections(payload); err == nil {
		t.Fatal("additional properties must be rejected")
	}
}

func TestValidateSectionsRejectsWrongValueType(t *testing.T) {
	payload := decodePayload(t, `{
		"costs": [{"titleEn": "Drilling", "titleAr": "حفر", "value": "expensive"}]
	}`)

	if err := validation.ValidateSections(payload); err == nil {
		t.Fatal("string value must fail the number schema")
	}
}

func TestIssuesExtractsLocations(t *testing.T) {
	payload := decodePayload(t, `{
		"slides": [{"titleEn": "Opening"}]
	}`)

	err := validation.ValidateSections(payload)
	issues := validation.Issues(err)
	if len(issues) == 0 {
		t.Fatal("expected issues from validation error")
	}
	if validation.Issues(nil) != nil {
		t.Fatal("nil error yields nil issues")
	}

	plain := errors.New("storage offline")
	got := validation.Issues(plain)
	if len(got) != 1 || got[0].Message != "storage offline" {
		t.Fatalf("plain error issues = %+v", got)
	}
}

// Section schema documents double as go-crud registry entries so tooling
// that reads the registry can introspect payload shapes.
func TestSectionSchemasRegisterWithCRUDRegistry(t *testing.T) {
	for key, doc := range validation.SectionSchemas() {
		if ok := crud.RegisterSchemaDocument(key, key+"s", doc); !ok {
			t.Fatalf("crud registry rejected %s", key)
		}
		entry, ok := crud.GetSchema(key)
		if !ok {
			t.Fatalf("schema %s not retrievable", key)
		}
		if entry.Document["type"] != "array" {
			t.Fatalf("schema %s document = %+v", key, entry.Document)
		}
	}
}
