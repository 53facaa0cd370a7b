package render

import (
	"context"
	"strings"
	"testing"
)

func TestToPDFMissingConverter(t *testing.T) {
	orig := converter
	converter = "rsvg-convert-does-not-exist"
	defer func() { converter = orig }()

	if Available() {
		t.Fatal("Available() = true for missing binary")
	}
	_, err := ToPDF(context.Background(), []byte("<svg/>"))
	if err == nil {
		t.Fatal("ToPDF() should fail without rsvg-convert")
	}
	if !strings.Contains(err.Error(), "librsvg") {
		t.Errorf("error should mention librsvg: %v", err)
	}
}
