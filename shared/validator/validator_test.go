package validator_test

import (
	"strings"
	"testing"

	"socihub/shared/validator"
)

// Test structs for validation
type ValidTestStruct struct {
	Name        string `validate:"required" json:"name"`
	BookingDate string `validate:"required,bookingdate" json:"booking_date"`
	StartTime   string `validate:"omitempty,timeofday" json:"start_time"`
	Granularity string `validate:"oneof=whole_day half_day hourly" json:"granularity"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        *ValidTestStruct
		expectError bool
	}{
		{
			name: "valid struct",
			data: &ValidTestStruct{
				Name:        "Clubhouse",
				BookingDate: "2026-09-12",
				StartTime:   "09:00",
				Granularity: "hourly",
			},
			expectError: false,
		},
		{
			name: "missing required field",
			data: &ValidTestStruct{
				BookingDate: "2026-09-12",
				Granularity: "whole_day",
			},
			expectError: true,
		},
		{
			name: "invalid booking date",
			data: &ValidTestStruct{
				Name:        "Clubhouse",
				BookingDate: "12-09-2026",
				Granularity: "whole_day",
			},
			expectError: true,
		},
		{
			name: "invalid time of day",
			data: &ValidTestStruct{
				Name:        "Clubhouse",
				BookingDate: "2026-09-12",
				StartTime:   "25:99",
				Granularity: "hourly",
			},
			expectError: true,
		},
		{
			name: "invalid granularity",
			data: &ValidTestStruct{
				Name:        "Clubhouse",
				BookingDate: "2026-09-12",
				Granularity: "weekly",
			},
			expectError: true,
		},
		{
			name: "empty start time is allowed",
			data: &ValidTestStruct{
				Name:        "Clubhouse",
				BookingDate: "2026-09-12",
				Granularity: "half_day",
			},
			expectError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(tt.data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name        string
		field       interface{}
		tag         string
		expectError bool
	}{
		{
			name:        "valid required string",
			field:       "test",
			tag:         "required",
			expectError: false,
		},
		{
			name:        "empty required string",
			field:       "",
			tag:         "required",
			expectError: true,
		},
		{
			name:        "valid time of day",
			field:       "18:30",
			tag:         "timeofday",
			expectError: false,
		},
		{
			name:        "invalid time of day",
			field:       "half past six",
			tag:         "timeofday",
			expectError: true,
		},
		{
			name:        "valid booking date",
			field:       "2026-01-31",
			tag:         "bookingdate",
			expectError: false,
		},
		{
			name:        "invalid booking date",
			field:       "2026-13-01",
			tag:         "bookingdate",
			expectError: true,
		},
		{
			name:        "valid oneof",
			field:       "morning",
			tag:         "oneof=morning afternoon",
			expectError: false,
		},
		{
			name:        "invalid oneof",
			field:       "evening",
			tag:         "oneof=morning afternoon",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		jsonBody    string
		expectError bool
	}{
		{
			name:        "valid JSON",
			jsonBody:    `{"name":"Clubhouse","booking_date":"2026-09-12","granularity":"whole_day"}`,
			expectError: false,
		},
		{
			name:        "invalid JSON values",
			jsonBody:    `{"name":"Clubhouse","booking_date":"not-a-date","granularity":"whole_day"}`,
			expectError: true,
		},
		{
			name:        "malformed JSON",
			jsonBody:    `{"name":"Clubhouse","booking_date":}`,
			expectError: true,
		},
		{
			name:        "empty JSON",
			jsonBody:    `{}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := strings.NewReader(tt.jsonBody)
			var data ValidTestStruct
			err := validator.Validate(reader, &data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

// Test custom validation messages
func TestValidationMessages(t *testing.T) {
	data := &ValidTestStruct{}
	err := validator.ValidateStruct(data)

	if err == nil {
		t.Fatal("expected validation error for empty struct")
	}

	errorMsg := err.Error()

	if !strings.Contains(errorMsg, "required") || errorMsg == "" {
		t.Errorf("expected descriptive error message containing 'required', got: %s", errorMsg)
	}
}
