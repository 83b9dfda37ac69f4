package driver

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"feelscope/internal/config"
	"feelscope/internal/diag"
)

const ordersScenario = `name = "orders"

[features]
weekday = false

[[item]]
name = "tCustomer"

  [[item.field]]
  name = "name"
  type = "string"

  [[item.field]]
  name = "birthday"
  type = "date"

[[item]]
name = "tOrder"

  [[item.field]]
  name = "customer"
  type = "tCustomer"

  [[item.field]]
  name = "total"
  type = "number"

[[variable]]
name = "order"
type = "tOrder"

[[variable]]
name = "payload"
type = "unknown"

[[check]]
expr = "order.customer.name"

[[check]]
expr = "order.customer.birthday.weekday"

[[check]]
expr = "payload.anything.goes"

[[check]]
expr = "orders.total"

[[check]]
expr = "order.customer"
filter = ["name", "birthday.year", "missing"]

[[check]]
expr = "item.total"

  [[check.bind]]
  name = "item"
  type = "tOrder"

[[check]]
expr = "total"
type-scope = "tOrder"
`

func writeScenario(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func diagNames(bag *diag.Bag) []string {
	var out []string
	for _, d := range bag.Items() {
		out = append(out, d.Name)
	}
	sort.Strings(out)
	return out
}

func TestCheckFileReplaysScenario(t *testing.T) {
	path := writeScenario(t, t.TempDir(), "orders"+ScenarioSuffix, ordersScenario)
	res, err := CheckFile(context.Background(), path, Options{})
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if res.Features.WeekdayField {
		t.Fatalf("scenario should have turned weekday off")
	}
	if !res.Features.EnhancedForLoop {
		t.Fatalf("untouched feature should keep its default")
	}

	want := []string{"missing", "order.customer.birthday.weekday", "orders", "orders.total"}
	got := diagNames(res.Bag)
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("diagnostics = %v, want %v", got, want)
	}
	for _, d := range res.Bag.Items() {
		if d.Code != diag.FeelUnknownVariable || d.Severity != diag.SevError {
			t.Fatalf("unexpected diagnostic %+v", d)
		}
		if d.Message != "Unknown variable '"+d.Name+"'" {
			t.Fatalf("unexpected message %q", d.Message)
		}
		if d.Line < 1 {
			t.Fatalf("missing line for %q", d.Name)
		}
		first := strings.Split(d.Name, ".")[0]
		if got := res.Files.Text(d.Primary); got != first {
			t.Fatalf("span text = %q, want %q", got, first)
		}
	}
	if res.Snapshot() == nil {
		t.Fatalf("expected a snapshot")
	}
	if len(res.Timing.Phases) == 0 {
		t.Fatalf("expected timings")
	}
}

func TestCheckFileWeekdayFromBase(t *testing.T) {
	src := strings.Replace(ordersScenario, "[features]\nweekday = false\n", "", 1)
	path := writeScenario(t, t.TempDir(), "orders"+ScenarioSuffix, src)
	feats := config.Default()
	res, err := CheckFile(context.Background(), path, Options{Features: &feats})
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	for _, name := range diagNames(res.Bag) {
		if strings.HasSuffix(name, "weekday") {
			t.Fatalf("weekday should resolve with the default features")
		}
	}
}

func TestCheckFileUnknownTypes(t *testing.T) {
	src := `
[[variable]]
name = "v"
type = "tNope"

[[check]]
expr = "v"
type-scope = "tMissing"
`
	path := writeScenario(t, t.TempDir(), "types"+ScenarioSuffix, src)
	res, err := CheckFile(context.Background(), path, Options{})
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	items := res.Bag.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 diagnostics, got %+v", items)
	}
	for _, d := range items {
		if d.Code != diag.FeelUnknownType {
			t.Fatalf("unexpected code %v", d.Code)
		}
	}
	if got := res.Files.Text(items[0].Primary); got != "tNope" {
		t.Fatalf("span text = %q", got)
	}
}

func TestCheckFileExternalItems(t *testing.T) {
	dir := t.TempDir()
	writeScenario(t, dir, "defs.toml", "[[item]]\nname = \"tPoint\"\n[[item.field]]\nname = \"x\"\ntype = \"number\"\n")
	path := writeScenario(t, dir, "ext"+ScenarioSuffix, "items = \"defs.toml\"\n[[variable]]\nname = \"p\"\ntype = \"tPoint\"\n[[check]]\nexpr = \"p.x\"\n[[check]]\nexpr = \"p.y\"\n")
	res, err := CheckFile(context.Background(), path, Options{})
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if got := diagNames(res.Bag); len(got) != 1 || got[0] != "p.y" {
		t.Fatalf("diagnostics = %v", got)
	}
}

func TestCheckFileMalformed(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]string{
		"syntax":      "[[check]\n",
		"unknown-key": "colour = \"red\"\n",
		"empty-expr":  "[[check]]\nexpr = \"\"\n",
	}
	for name, src := range cases {
		path := writeScenario(t, dir, name+ScenarioSuffix, src)
		res, err := CheckFile(context.Background(), path, Options{})
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		items := res.Bag.Items()
		if len(items) != 1 || items[0].Code != diag.IOScenarioSyntax {
			t.Fatalf("%s: diagnostics = %+v", name, items)
		}
	}

	res, err := CheckFile(context.Background(), filepath.Join(dir, "absent"+ScenarioSuffix), Options{})
	if err != nil {
		t.Fatalf("absent: %v", err)
	}
	if items := res.Bag.Items(); len(items) != 1 || items[0].Code != diag.IOLoadFileError {
		t.Fatalf("absent: diagnostics = %+v", items)
	}
	if res.Snapshot() != nil {
		t.Fatalf("absent: no snapshot expected")
	}
}

func TestCheckMalformedQualifiedName(t *testing.T) {
	path := writeScenario(t, t.TempDir(), "dots"+ScenarioSuffix, "[[check]]\nexpr = \"a..b\"\n")
	res, err := CheckFile(context.Background(), path, Options{})
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if items := res.Bag.Items(); len(items) != 1 || items[0].Code != diag.IOScenarioSyntax {
		t.Fatalf("diagnostics = %+v", items)
	}
}

func TestCheckCancelled(t *testing.T) {
	path := writeScenario(t, t.TempDir(), "orders"+ScenarioSuffix, ordersScenario)
	sc, err := LoadScenario(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Check(ctx, sc, Options{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestCheckAll(t *testing.T) {
	dir := t.TempDir()
	writeScenario(t, dir, "a"+ScenarioSuffix, ordersScenario)
	writeScenario(t, dir, "b"+ScenarioSuffix, "[[variable]]\nname = \"x\"\n[[check]]\nexpr = \"x\"\n")
	writeScenario(t, dir, "c"+ScenarioSuffix, "[[check]\n")
	writeScenario(t, dir, "notes.toml", "ignored = true\n")

	events := make(chan Event, 64)
	results, err := CheckAll(context.Background(), []string{dir}, Options{Jobs: 2}, ChannelSink{Ch: events})
	close(events)
	if err != nil {
		t.Fatalf("check all: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("results = %d, want 3", len(results))
	}
	if filepath.Base(results[0].Path) != "a"+ScenarioSuffix || len(results[0].Bag.Items()) != 4 {
		t.Fatalf("unexpected first result %s with %d diagnostics", results[0].Path, len(results[0].Bag.Items()))
	}
	if results[1].Bag.Len() != 0 {
		t.Fatalf("b should be clean: %+v", results[1].Bag.Items())
	}
	if items := results[2].Bag.Items(); len(items) != 1 || items[0].Code != diag.IOScenarioSyntax {
		t.Fatalf("c should fail to decode: %+v", items)
	}

	statuses := make(map[Status]int)
	for evt := range events {
		statuses[evt.Status]++
	}
	if statuses[StatusQueued] != 3 || statuses[StatusDone] != 1 || statuses[StatusError] != 2 {
		t.Fatalf("unexpected event counts %v", statuses)
	}
}

func TestCollectScenariosMissingPath(t *testing.T) {
	if _, err := CollectScenarios([]string{filepath.Join(t.TempDir(), "nope")}); !errors.Is(err, ErrLoad) {
		t.Fatalf("expected ErrLoad, got %v", err)
	}
}

func TestSnapshotFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := writeScenario(t, dir, "orders"+ScenarioSuffix, ordersScenario)
	res, err := CheckFile(context.Background(), path, Options{})
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	failed, _ := CheckFile(context.Background(), filepath.Join(dir, "absent"+ScenarioSuffix), Options{})

	out := filepath.Join(dir, "out", "scopes.mp")
	if err := WriteSnapshots(out, []*Result{res, failed}); err != nil {
		t.Fatalf("write: %v", err)
	}
	file, err := ReadSnapshots(out)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(file.Scenarios) != 1 || file.Scenarios[0].Path != res.Path {
		t.Fatalf("unexpected scenarios %+v", file.Scenarios)
	}
	if got, want := len(file.Scenarios[0].Snapshot.Scopes), res.Table.Scopes.Len(); got != want {
		t.Fatalf("scopes = %d, want %d", got, want)
	}
}
