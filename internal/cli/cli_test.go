package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/cloudarch/pkg/arch"
	"github.com/matzehuels/cloudarch/pkg/errors"
)

// execute runs the root command with args and returns its stdout.
func execute(t *testing.T, c *CLI, args ...string) (string, error) {
	t.Helper()
	root := c.RootCommand()
	var stdout bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return stdout.String(), err
}

// isolate points config and cache lookups at empty temp directories.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
}

func TestRecommend(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	var stderr bytes.Buffer

	stdout, err := execute(t, New(&stderr, LogInfo),
		"--project-type", "web",
		"--scale", "large",
		"--technologies", "",
		"--budget", "12000",
		"--performance-requirements", "high availability",
		"--output-dir", dir,
		"--format", "dot,json",
	)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	want := fmt.Sprintf("%s: diagram generated: %s\n", arch.NameWebMultiAZ, filepath.Join(dir, "architecture_1.dot"))
	if stdout != want {
		t.Errorf("stdout = %q, want %q", stdout, want)
	}
	for _, name := range []string{"architecture_1.dot", "architecture_1.json"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}
	if _, err := os.Stat(filepath.Join(dir, "architectures.json")); !os.IsNotExist(err) {
		t.Error("manifest should only be written with --manifest")
	}
	if !strings.Contains(stderr.String(), "Generated 1 architecture diagram") {
		t.Errorf("stderr = %q, want completion log", stderr.String())
	}
}

func TestRecommendMultipleArchitectures(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	stdout, err := execute(t, New(&bytes.Buffer{}, LogInfo),
		"--project-type", "web",
		"--scale", "large",
		"--technologies", "microservices, serverless",
		"--budget", "20000",
		"--performance-requirements", "high performance,high security",
		"-o", dir,
		"-f", "dot",
		"--manifest",
	)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	if len(lines) != 2 {
		t.Fatalf("stdout lines = %d, want 2:\n%s", len(lines), stdout)
	}
	for i, name := range []string{arch.NameMicroservicesLarge, arch.NameServerlessHighPerf} {
		want := fmt.Sprintf("%s: diagram generated: %s", name, filepath.Join(dir, fmt.Sprintf("architecture_%d.dot", i+1)))
		if lines[i] != want {
			t.Errorf("line %d = %q, want %q", i, lines[i], want)
		}
	}
	if _, err := os.Stat(filepath.Join(dir, "architectures.json")); err != nil {
		t.Errorf("manifest not written: %v", err)
	}
}

func TestRecommendKeepsCompletedOnFailure(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "architecture_2.dot"), 0755); err != nil {
		t.Fatal(err)
	}

	stdout, err := execute(t, New(&bytes.Buffer{}, LogInfo),
		"--project-type", "web",
		"--scale", "large",
		"--technologies", "microservices,serverless",
		"--budget", "20000",
		"--performance-requirements", "",
		"-o", dir,
		"-f", "dot",
	)
	if err == nil {
		t.Fatal("expected an error writing architecture_2.dot")
	}
	if !errors.Is(err, errors.ErrCodeIO) {
		t.Errorf("error code = %s, want %s", errors.GetCode(err), errors.ErrCodeIO)
	}

	want := fmt.Sprintf("%s: diagram generated: %s\n", arch.NameMicroservicesLarge, filepath.Join(dir, "architecture_1.dot"))
	if stdout != want {
		t.Errorf("stdout = %q, want %q", stdout, want)
	}
	if _, err := os.Stat(filepath.Join(dir, "architecture_1.dot")); err != nil {
		t.Errorf("architecture_1.dot should stay on disk: %v", err)
	}
}

func TestRecommendConfigFile(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	cfg := fmt.Sprintf("output_dir = %q\nformats = [\"json\"]\n[render]\nedge_color = \"navy\"\n", dir)
	if err := os.WriteFile(cfgPath, []byte(cfg), 0644); err != nil {
		t.Fatal(err)
	}

	stdout, err := execute(t, New(&bytes.Buffer{}, LogInfo),
		"--project-type", "mobile",
		"--scale", "small",
		"--technologies", "push notifications",
		"--budget", "100",
		"--performance-requirements", "",
		"--config", cfgPath,
	)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	want := fmt.Sprintf("%s: diagram generated: %s\n", arch.NameMobileBackend, filepath.Join(dir, "architecture_1.json"))
	if stdout != want {
		t.Errorf("stdout = %q, want %q", stdout, want)
	}
	data, err := os.ReadFile(filepath.Join(dir, "architecture_1.json"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"color": "navy"`) {
		t.Errorf("edge color from config not applied:\n%s", data)
	}
}

func TestRecommendFlagErrors(t *testing.T) {
	isolate(t)
	base := []string{
		"--project-type", "web",
		"--scale", "small",
		"--technologies", "",
		"--performance-requirements", "",
		"-o", t.TempDir(),
		"-f", "dot",
	}

	tests := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{"missing budget", base, "budget"},
		{"non-numeric budget", append(base, "--budget", "lots"), "budget"},
		{"negative budget", append(base, "--budget=-5"), "negative"},
		{"bad format", append(base, "--budget", "1", "-f", "gif"), "invalid format"},
		{"missing config", append(base, "--budget", "1", "--config", filepath.Join(t.TempDir(), "nope.toml")), "config"},
		{"positional arg", append(base, "--budget", "1", "extra"), "unknown command"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, New(&bytes.Buffer{}, LogInfo), tt.args...)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error = %q, want it to mention %q", err, tt.wantMsg)
			}
		})
	}
}

func TestRecommendOptsRequirement(t *testing.T) {
	opts := recommendOpts{
		projectType:  " web ",
		scale:        "medium",
		technologies: " serverless , ,machine learning",
		budget:       budgetValue(42.5),
		performance:  "low latency",
	}
	req, err := opts.requirement()
	if err != nil {
		t.Fatal(err)
	}
	if req.ProjectType != arch.ProjectWeb || req.Scale != arch.ScaleMedium || req.Budget != 42.5 {
		t.Errorf("requirement = %+v", req)
	}
	if len(req.Technologies) != 2 || req.Technologies[1] != arch.TechMachineLearning {
		t.Errorf("technologies = %q", req.Technologies)
	}

	opts.performance = "fast\x00"
	if _, err := opts.requirement(); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("control character error = %v, want INVALID_INPUT", err)
	}
}

func TestBudgetValue(t *testing.T) {
	var b budgetValue
	if err := b.Set("1500.50"); err != nil {
		t.Fatal(err)
	}
	if float64(b) != 1500.5 || b.String() != "1500.5" {
		t.Errorf("budget = %v", b)
	}
	for _, in := range []string{"", "abc", "-1", "NaN", "Inf"} {
		if err := b.Set(in); !errors.Is(err, errors.ErrCodeInvalidInput) {
			t.Errorf("Set(%q) error = %v, want INVALID_INPUT", in, err)
		}
	}
}

func TestRulesCommand(t *testing.T) {
	stdout, err := execute(t, New(&bytes.Buffer{}, LogInfo), "rules")
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range arch.Rules() {
		if !strings.Contains(stdout, r.Name) {
			t.Errorf("rules output missing %q", r.Name)
		}
	}
}

func TestCompletionCommand(t *testing.T) {
	stdout, err := execute(t, New(&bytes.Buffer{}, LogInfo), "completion", "bash")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stdout, "cloudarch") {
		t.Error("bash completion should reference the command name")
	}

	if _, err := execute(t, New(&bytes.Buffer{}, LogInfo), "completion", "tcsh"); err == nil {
		t.Error("unsupported shell should fail")
	}
}

func TestVersionFlag(t *testing.T) {
	stdout, err := execute(t, New(&bytes.Buffer{}, LogInfo), "--version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stdout, "cloudarch version") {
		t.Errorf("--version output = %q", stdout)
	}
}
