package io

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/cloudarch/pkg/arch"
)

// ManifestFile is the file name the pipeline writes manifests to.
const ManifestFile = "architectures.json"

// Manifest describes one recommendation run.
type Manifest struct {
	RunID         uuid.UUID        `json:"run_id"`
	GeneratedAt   time.Time        `json:"generated_at"`
	Requirement   arch.Requirement `json:"requirement"`
	Architectures []Architecture   `json:"architectures"`
}

// Architecture is one recommended descriptor and the files rendered for it.
type Architecture struct {
	Index      int         `json:"index"`
	Name       string      `json:"name"`
	Components []arch.Kind `json:"components"`
	Artifacts  []string    `json:"artifacts"`
}

// WriteManifest encodes m as indented JSON.
func WriteManifest(m *Manifest, w io.Writer) error {
	return encode(w, m)
}

// ExportManifest writes m to path.
func ExportManifest(m *Manifest, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteManifest(m, f)
}
