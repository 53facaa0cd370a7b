package errors

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseBudget(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr bool
	}{
		{"integer", "12000", 12000, false},
		{"decimal", "99.95", 99.95, false},
		{"zero", "0", 0, false},
		{"padded", " 500 ", 500, false},

		{"negative", "-1", 0, true},
		{"not a number", "lots", 0, true},
		{"empty", "", 0, true},
		{"nan", "NaN", 0, true},
		{"infinite", "Inf", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBudget(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseBudget(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidInput) {
				t.Errorf("ParseBudget(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidInput)
			}
			if got != tt.want {
				t.Errorf("ParseBudget(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidateBudget(t *testing.T) {
	if err := ValidateBudget(0); err != nil {
		t.Errorf("ValidateBudget(0) = %v", err)
	}
	if err := ValidateBudget(math.Inf(-1)); err == nil {
		t.Error("ValidateBudget(-Inf) should fail")
	}
}

func TestValidateTag(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid", "high availability", false},
		{"unknown but fine", "quantum", false},
		{"empty", "", false},

		{"too long", strings.Repeat("a", 200), true},
		{"newline", "low\nlatency", true},
		{"null byte", "serverless\x00", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTag(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateTag(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateOutputDir(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file.txt")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"existing dir", dir, false},
		{"missing dir", filepath.Join(dir, "new"), false},
		{"empty", "", true},
		{"file", file, true},
		{"null byte", "out\x00put", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputDir(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputDir(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPath) {
				t.Errorf("ValidateOutputDir(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidPath)
			}
		})
	}
}
