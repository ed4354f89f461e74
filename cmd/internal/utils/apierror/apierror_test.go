package apierror

import (
	"encoding/json"
	"errors"
	"github.com/go-playground/validator/v10"
	"net/http"
	"strings"
	"testing"
)

func TestNewValidationError_Message(t *testing.T) {
	err := NewValidationError([]string{"date", "time"}, []string{"mode"})
	if err.Code() != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", err.Code())
	}
	want := "Missing required fields: date, time; Invalid value for fields: mode"
	if err.Error() != want {
		t.Errorf("got %q", err.Error())
	}
}

func TestConflictError_JSON(t *testing.T) {
	err := NewConflictError(1, "Dr. Rajesh Kumar", "2026-01-30", "09:00", 30, "Sarah Johnson")

	raw, _ := json.Marshal(err)
	var body map[string]any
	if jerr := json.Unmarshal(raw, &body); jerr != nil {
		t.Fatalf("unmarshal: %v", jerr)
	}
	if body["success"] != false {
		t.Errorf("expected success=false, got %v", body["success"])
	}
	if body["kind"] != string(KindConflict) {
		t.Errorf("unexpected kind %v", body["kind"])
	}
	msg, _ := body["error"].(string)
	if !strings.Contains(msg, "Sarah Johnson") || !strings.Contains(msg, "09:00") {
		t.Errorf("message does not identify the booked appointment: %q", msg)
	}
}

func TestErrorKindsAreDistinguishable(t *testing.T) {
	var target *MalformedInputError
	var err error = NewMalformedInputError("bad duration")
	if !errors.As(err, &target) {
		t.Error("expected MalformedInputError")
	}

	var nf *NotFoundError
	if errors.As(err, &nf) {
		t.Error("malformed input must not match NotFoundError")
	}
	if NotFound.Code() != http.StatusNotFound {
		t.Errorf("expected 404, got %d", NotFound.Code())
	}
}

func TestFromValidationError(t *testing.T) {
	type req struct {
		A string `validate:"required"`
		B string `validate:"required"`
		C string `validate:"omitempty,min=3"`
	}
	v := validator.New()
	verr := v.Struct(&req{C: "x"})

	apierr := FromValidationError(verr)
	var ve *ValidationError
	if !errors.As(apierr, &ve) {
		t.Fatalf("expected ValidationError, got %T", apierr)
	}
	if len(ve.Missing) != 2 || ve.Missing[0] != "A" || ve.Missing[1] != "B" {
		t.Errorf("unexpected missing: %v", ve.Missing)
	}
	if len(ve.Invalid) != 1 || ve.Invalid[0] != "C" {
		t.Errorf("unexpected invalid: %v", ve.Invalid)
	}
}

func TestFromValidationError_NonValidatorError(t *testing.T) {
	if got := FromValidationError(errors.New("boom")); got != MalformedBodyError {
		t.Errorf("expected MalformedBodyError, got %v", got)
	}
}

func TestFromValidationError_NonZeroCountsAsMissing(t *testing.T) {
	type req struct {
		Name     string `validate:"required"`
		Duration string `validate:"required,nonzero"`
	}
	v := validator.New()
	_ = v.RegisterValidation("nonzero", func(fl validator.FieldLevel) bool { return fl.Field().String() != "0" })

	var ve *ValidationError
	if !errors.As(FromValidationError(v.Struct(&req{Duration: "0"})), &ve) {
		t.Fatal("expected ValidationError")
	}
	if strings.Join(ve.Missing, ",") != "Name,Duration" || len(ve.Invalid) != 0 {
		t.Errorf("unexpected fields: missing %v invalid %v", ve.Missing, ve.Invalid)
	}
}

func TestNewMissingParamError(t *testing.T) {
	err := NewMissingParamError("id")
	if err.Code() != http.StatusBadRequest || err.Kind != KindValidation {
		t.Errorf("unexpected error %+v", err)
	}
	if err.Error() != "Missing required fields: id" {
		t.Errorf("unexpected message %q", err.Error())
	}
}
