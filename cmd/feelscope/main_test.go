package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"feelscope/internal/driver"
)

const cmdScenario = `name = "cmd"

[[item]]
name = "tOrder"

  [[item.field]]
  name = "total"
  type = "number"

[[variable]]
name = "order"
type = "tOrder"

[[check]]
expr = "order.total"

[[check]]
expr = "missing"
`

const cleanScenario = `name = "clean"

[[variable]]
name = "amount"
type = "number"

[[check]]
expr = "amount"
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd, cleanup := newRootCmd()
	defer cleanup()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestReadUIMode(t *testing.T) {
	cases := map[string]uiMode{"": uiModeAuto, "AUTO": uiModeAuto, "on": uiModeOn, " off ": uiModeOff}
	for in, want := range cases {
		got, err := readUIMode(in)
		if err != nil || got != want {
			t.Fatalf("readUIMode(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := readUIMode("sometimes"); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
	if !shouldUseTUI(uiModeOn) || shouldUseTUI(uiModeOff) {
		t.Fatalf("explicit ui modes must win over terminal detection")
	}
}

func TestColorEnabled(t *testing.T) {
	if on, err := colorEnabled("on", nil); err != nil || !on {
		t.Fatalf("on = %v, %v", on, err)
	}
	if on, err := colorEnabled("never", nil); err != nil || on {
		t.Fatalf("never = %v, %v", on, err)
	}
	if on, err := colorEnabled("auto", nil); err != nil || on {
		t.Fatalf("auto without a file should be off, got %v, %v", on, err)
	}
	if _, err := colorEnabled("rainbow", nil); err == nil {
		t.Fatalf("expected error for unknown color mode")
	}
}

func TestCheckCommandReportsUnknownVariable(t *testing.T) {
	path := writeFile(t, t.TempDir(), "cmd"+driver.ScenarioSuffix, cmdScenario)
	out, _, err := execute(t, "--color=off", "check", "--ui=off", path)
	if !errors.Is(err, errProblemsFound) {
		t.Fatalf("err = %v, want errProblemsFound", err)
	}
	if !strings.Contains(out, "Unknown variable 'missing'") {
		t.Fatalf("missing diagnostic in output:\n%s", out)
	}
	if strings.Contains(out, "order.total") {
		t.Fatalf("resolved name reported:\n%s", out)
	}
	if !strings.Contains(out, "1 scenario(s) checked, 1 with errors") {
		t.Fatalf("missing summary:\n%s", out)
	}
}

func TestCheckCommandCleanScenario(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "clean"+driver.ScenarioSuffix, cleanScenario)
	out, _, err := execute(t, "--color=off", "--quiet", "check", "--ui=off", dir)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if out != "" {
		t.Fatalf("quiet clean run printed:\n%s", out)
	}
}

func TestCheckCommandJSON(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "cmd"+driver.ScenarioSuffix, cmdScenario)
	snap := filepath.Join(dir, "scopes.msgpack")
	out, _, err := execute(t, "check", "--format=json", "--ui=off", "--snapshot", snap, path)
	if !errors.Is(err, errProblemsFound) {
		t.Fatalf("err = %v, want errProblemsFound", err)
	}
	var payload checkJSON
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if payload.Errors != 1 || len(payload.Scenarios) != 1 {
		t.Fatalf("payload = %+v", payload)
	}
	sc := payload.Scenarios[0]
	if sc.Count != 1 || sc.Diagnostics[0].Name != "missing" || sc.Diagnostics[0].Code != "FEEL3001" {
		t.Fatalf("diagnostics = %+v", sc.Diagnostics)
	}

	file, err := driver.ReadSnapshots(snap)
	if err != nil {
		t.Fatalf("read snapshots: %v", err)
	}
	if len(file.Scenarios) != 1 || file.Scenarios[0].Path != path {
		t.Fatalf("snapshot file = %+v", file)
	}
}

func TestCheckCommandRejectsFormat(t *testing.T) {
	_, _, err := execute(t, "check", "--format=xml", "x.feel.toml")
	if err == nil || !strings.Contains(err.Error(), "unsupported format") {
		t.Fatalf("err = %v", err)
	}
}

func TestDumpCommand(t *testing.T) {
	path := writeFile(t, t.TempDir(), "cmd"+driver.ScenarioSuffix, cmdScenario)
	out, errOut, err := execute(t, "dump", path)
	if err != nil {
		t.Fatalf("dump: %v", err)
	}
	if !strings.Contains(out, `"<global>"`) || !strings.Contains(out, `variable "order" : tOrder`) {
		t.Fatalf("unexpected dump:\n%s", out)
	}
	if strings.Contains(out, `function "date and time"`) {
		t.Fatalf("prelude should be hidden by default:\n%s", out)
	}
	if !strings.Contains(errOut, "Unknown variable 'missing'") {
		t.Fatalf("diagnostics not on stderr:\n%s", errOut)
	}

	out, _, err = execute(t, "dump", "--prelude", path)
	if err != nil {
		t.Fatalf("dump --prelude: %v", err)
	}
	if !strings.Contains(out, `function "date and time"`) {
		t.Fatalf("prelude missing:\n%s", out)
	}
}

func TestVersionCommand(t *testing.T) {
	out, _, err := execute(t, "--color=off", "version", "--hash")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.HasPrefix(out, "feelscope ") || !strings.Contains(out, "commit: unknown") {
		t.Fatalf("unexpected output:\n%s", out)
	}

	out, _, err = execute(t, "version", "--format=json", "--full")
	if err != nil {
		t.Fatalf("version json: %v", err)
	}
	var payload versionPayload
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload.Tool != "feelscope" || payload.BuildDate != "unknown" {
		t.Fatalf("payload = %+v", payload)
	}
}

func TestProfilingFlagsWriteFiles(t *testing.T) {
	dir := t.TempDir()
	cpu := filepath.Join(dir, "cpu.pprof")
	mem := filepath.Join(dir, "mem.pprof")
	if _, _, err := execute(t, "--cpu-profile", cpu, "--mem-profile", mem, "version"); err != nil {
		t.Fatalf("version: %v", err)
	}
	for _, p := range []string{cpu, mem} {
		if _, err := os.Stat(p); err != nil {
			t.Fatalf("missing %s: %v", filepath.Base(p), err)
		}
	}
}

func TestCheckCommandMaxDiagnostics(t *testing.T) {
	content := cleanScenario + "\n[[check]]\nexpr = \"first\"\n\n[[check]]\nexpr = \"second\"\n"
	path := writeFile(t, t.TempDir(), "many"+driver.ScenarioSuffix, content)
	out, _, err := execute(t, "--color=off", "--max-diagnostics=1", "check", "--ui=off", path)
	if !errors.Is(err, errProblemsFound) {
		t.Fatalf("err = %v, want errProblemsFound", err)
	}
	if !strings.Contains(out, "Unknown variable 'first'") || strings.Contains(out, "Unknown variable 'second'") {
		t.Fatalf("limit not applied:\n%s", out)
	}
	if !strings.Contains(out, "1 more diagnostic(s) not shown") {
		t.Fatalf("missing dropped note:\n%s", out)
	}
}
