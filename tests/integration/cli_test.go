// CLI integration tests for datacleaner.
package integration

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// TestMain builds the datacleaner binary once before running tests.
func TestMain(m *testing.M) {
	projectRoot, err := FindProjectRoot()
	if err != nil {
		SetBuildErr(err)
		os.Exit(1)
	}

	tmpDir, err := os.MkdirTemp("", "datacleaner-test-*")
	if err != nil {
		SetBuildErr(err)
		os.Exit(1)
	}
	binPath := filepath.Join(tmpDir, "datacleaner")
	SetDatacleanerBin(binPath)

	cmd := exec.Command("go", "build", "-o", binPath, "./cmd/datacleaner")
	cmd.Dir = projectRoot
	if output, err := cmd.CombinedOutput(); err != nil {
		SetBuildErr(&BuildError{Err: err, Output: string(output)})
		os.Exit(1)
	}

	code := m.Run()

	os.RemoveAll(tmpDir)
	os.Exit(code)
}

// sampleCSV has one duplicate row and one missing age.
const sampleCSV = `age,salary,name,city
25,50000,Alice,new york
30,60000,Bob,chicago
30,60000,Bob,chicago
,70000,Carol,boston
45,80000,Dave,seattle
`

type summaryJSON struct {
	Rows         int `json:"rows"`
	Columns      int `json:"columns"`
	Duplicates   int `json:"duplicates"`
	TotalMissing int `json:"total_missing"`
}

type inspectJSON struct {
	Summary summaryJSON    `json:"summary"`
	Columns map[string]any `json:"columns"`
}

func TestVersion(t *testing.T) {
	env := NewTestEnv(t)

	result := env.MustRun("version")
	if !strings.HasPrefix(result.Stdout, "datacleaner ") {
		t.Errorf("unexpected version output: %q", result.Stdout)
	}
}

func TestInspectReportsShape(t *testing.T) {
	env := NewTestEnv(t)
	path := env.WriteCSV("sample.csv", sampleCSV)

	result := env.MustRun("inspect", "--json", path)
	report := ParseJSON[inspectJSON](t, result.Stdout)

	if report.Summary.Rows != 5 {
		t.Errorf("rows: got %d, want 5", report.Summary.Rows)
	}
	if report.Summary.Columns != 4 {
		t.Errorf("columns: got %d, want 4", report.Summary.Columns)
	}
	if report.Summary.Duplicates != 1 {
		t.Errorf("duplicates: got %d, want 1", report.Summary.Duplicates)
	}
	if report.Summary.TotalMissing != 1 {
		t.Errorf("total missing: got %d, want 1", report.Summary.TotalMissing)
	}
	if _, ok := report.Columns["salary"]; !ok {
		t.Error("expected salary column in report")
	}
}

func TestCleanDedupAndMissing(t *testing.T) {
	env := NewTestEnv(t)
	path := env.WriteCSV("sample.csv", sampleCSV)
	out := env.Path("cleaned.csv")

	result := env.MustRun("clean", "--json", "--dedup", "--missing", "age=mean", "--output", out, path)

	report := ParseJSON[struct {
		Summary summaryJSON `json:"summary"`
	}](t, result.Stdout)

	if report.Summary.Rows != 4 {
		t.Errorf("rows after dedup: got %d, want 4", report.Summary.Rows)
	}
	if report.Summary.TotalMissing != 0 {
		t.Errorf("missing after fill: got %d, want 0", report.Summary.TotalMissing)
	}

	if _, err := os.Stat(out); err != nil {
		t.Fatalf("cleaned output not written: %v", err)
	}

	// The written file must load clean.
	check := env.MustRun("inspect", "--json", out)
	reloaded := ParseJSON[inspectJSON](t, check.Stdout)
	if reloaded.Summary.Rows != 4 || reloaded.Summary.TotalMissing != 0 {
		t.Errorf("reloaded summary: got %+v", reloaded.Summary)
	}
}

func TestCleanRejectsBadMethod(t *testing.T) {
	env := NewTestEnv(t)
	path := env.WriteCSV("sample.csv", sampleCSV)

	result := env.Run("clean", "--dedup", "--keep", "every-other", path)
	if result.ExitCode != 1 {
		t.Errorf("exit code: got %d, want 1", result.ExitCode)
	}
}

func TestAnalyzeCorrelation(t *testing.T) {
	env := NewTestEnv(t)
	path := env.WriteCSV("sample.csv", sampleCSV)

	result := env.MustRun("analyze", "--json", path, "correlation")

	report := ParseJSON[struct {
		Method  string   `json:"method"`
		Columns []string `json:"columns"`
	}](t, result.Stdout)

	if report.Method != "pearson" {
		t.Errorf("method: got %q, want pearson", report.Method)
	}
	if len(report.Columns) != 2 {
		t.Errorf("numeric columns: got %v, want [age salary]", report.Columns)
	}
}

func TestAnalyzeUnknownKind(t *testing.T) {
	env := NewTestEnv(t)
	path := env.WriteCSV("sample.csv", sampleCSV)

	result := env.Run("analyze", path, "vibes")
	if result.ExitCode != 1 {
		t.Errorf("exit code: got %d, want 1", result.ExitCode)
	}
}

func TestValidateMissingFile(t *testing.T) {
	env := NewTestEnv(t)

	result := env.Run("validate", env.Path("nope.csv"))
	if result.ExitCode != 1 {
		t.Errorf("exit code: got %d, want 1", result.ExitCode)
	}
}

func TestValidateSuggest(t *testing.T) {
	env := NewTestEnv(t)
	path := env.WriteCSV("sample.csv", sampleCSV)

	result := env.MustRun("validate", "--json", path, "suggest")

	report := ParseJSON[struct {
		Recommended []string `json:"recommended"`
	}](t, result.Stdout)

	found := false
	for _, s := range report.Recommended {
		if strings.Contains(s, "duplicate") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a duplicate-rows suggestion, got %v", report.Recommended)
	}
}

func TestExportSQLiteAndJSON(t *testing.T) {
	env := NewTestEnv(t)
	path := env.WriteCSV("sample.csv", sampleCSV)

	env.MustRun("export", path, "--output", env.Path("out.db"))
	if _, err := os.Stat(env.Path("out.db")); err != nil {
		t.Errorf("sqlite output not written: %v", err)
	}

	env.MustRun("export", path, "--output", env.Path("out.json"))
	if _, err := os.Stat(env.Path("out.json")); err != nil {
		t.Errorf("json output not written: %v", err)
	}
}
