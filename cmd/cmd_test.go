package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

const testDataset = `{
  "employees": [
    {"id": 1, "first_name": "Ada", "last_name": "Lovelace"},
    {"id": 2, "first_name": "Grace", "last_name": "Hopper, Rear Admiral"}
  ],
  "clocks": [
    {"employee_id": 1, "clock_in_datetime": "2026-03-02 05:00:00", "clock_out_datetime": "2026-03-02 12:00:00"},
    {"employee_id": 1, "clock_in_datetime": "2026-03-02 13:00:00", "clock_out_datetime": "2026-03-02 14:30:00"},
    {"employee_id": 2, "clock_in_datetime": "2026-03-02 23:00:00", "clock_out_datetime": "2026-03-03 05:00:00"},
    {"employee_id": 2, "clock_in_datetime": "2026-03-03 04:30:00", "clock_out_datetime": "2026-03-03 06:00:00"}
  ]
}`

func resetFlags() {
	configPath, inputPath, strict = "", "", false
	exportOutput, exportFormat, exportEmployee, exportFrom, exportTo = "", "", 0, "", ""
	reportFormat, reportEmployee, reportFrom, reportTo = "md", 0, "", ""
	punchesEmployee = 0
}

func writeDataset(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.json")
	if err := os.WriteFile(path, []byte(testDataset), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

// execute runs the root command with an isolated config file and returns
// stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	resetFlags()
	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "config.json")}, args...))
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}
