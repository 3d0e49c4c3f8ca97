package dto

import (
	"testing"

	helper "personavix_backend/internals/helpers"
)

func f(v float64) *float64 { return &v }

func base() CreateAnswerRequest {
	return CreateAnswerRequest{
		Dominance:  f(25),
		Influence:  f(25),
		Stability:  f(25),
		Conformity: f(25),
		Reason:     "Avaliação anual",
	}
}

func TestCreateAnswerRequestBounds(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(r *CreateAnswerRequest)
		field string
	}{
		{name: "zero is allowed", edit: func(r *CreateAnswerRequest) { r.Dominance = f(0) }},
		{name: "hundred is allowed", edit: func(r *CreateAnswerRequest) { r.Conformity = f(100) }},
		{name: "negative", edit: func(r *CreateAnswerRequest) { r.Influence = f(-1) }, field: "influencia"},
		{name: "above hundred", edit: func(r *CreateAnswerRequest) { r.Stability = f(101) }, field: "estabilidade"},
		{name: "missing score", edit: func(r *CreateAnswerRequest) { r.Dominance = nil }, field: "dominancia"},
		{name: "empty reason", edit: func(r *CreateAnswerRequest) { r.Reason = "   " }, field: "motivo"},
		{name: "reason too long", edit: func(r *CreateAnswerRequest) { r.Reason = "0123456789012345678901234567890123456789012345" }, field: "motivo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := base()
			tt.edit(&r)
			r.Normalize()
			err := helper.ValidateStruct(&r)

			if tt.field == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			ve, ok := err.(*helper.ValidationError)
			if !ok {
				t.Fatalf("expected validation error, got %v", err)
			}
			if _, ok := ve.Fields[tt.field]; !ok {
				t.Fatalf("field %s not reported: %v", tt.field, ve.Fields)
			}
		})
	}
}
