package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tougshire/orgchart/pkg/errors"
	"github.com/tougshire/orgchart/pkg/pipeline"
)

const rosterCSV = `key,reports_to,full_name,icon
root,,Rita Root,
a,root,Alice Smith,
b,root,Bob Brown,
c,a,Carol Jones,
`

// newTestCLI returns a non-interactive CLI writing to buffers.
func newTestCLI() (*CLI, *bytes.Buffer, *bytes.Buffer) {
	var out, logs bytes.Buffer
	c := New(&logs, LogInfo)
	c.Out = &out
	c.Interactive = false
	return c, &out, &logs
}

func writeRoster(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "data.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func run(c *CLI, args ...string) error {
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(c.Out)
	root.SetErr(c.Out)
	return root.ExecuteContext(context.Background())
}

func TestRootCommandFlags(t *testing.T) {
	c, _, _ := newTestCLI()
	root := c.RootCommand()

	tests := []struct {
		flag string
		def  string
	}{
		{"output", ""},
		{"format", "png"},
		{"icons", "icons"},
		{"config", ""},
		{"ordering", "insertion"},
		{"dpi", "0"},
	}
	for _, tt := range tests {
		f := root.Flags().Lookup(tt.flag)
		if f == nil {
			t.Errorf("missing --%s", tt.flag)
			continue
		}
		if f.DefValue != tt.def {
			t.Errorf("--%s default = %q, want %q", tt.flag, f.DefValue, tt.def)
		}
	}

	for _, name := range []string{"layers", "completion"} {
		if cmd, _, err := root.Find([]string{name}); err != nil || cmd.Name() != name {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestChartWritesOutput(t *testing.T) {
	dir := t.TempDir()
	input := writeRoster(t, dir, rosterCSV)
	out := filepath.Join(dir, "team.png")

	c, stdout, logs := newTestCLI()
	if err := run(c, input, "-o", out, "--dpi", "30", "-f", "png,json"); err != nil {
		t.Fatalf("run: %v\n%s", err, logs.String())
	}

	for _, p := range []string{out, filepath.Join(dir, "team.json")} {
		if _, err := os.Stat(p); err != nil {
			t.Errorf("expected %s: %v", p, err)
		}
	}
	if !strings.Contains(stdout.String(), "Chart saved") {
		t.Errorf("stdout missing success line:\n%s", stdout.String())
	}
	if !strings.Contains(stdout.String(), "3 generations") {
		t.Errorf("stdout missing stats:\n%s", stdout.String())
	}
	if !strings.Contains(logs.String(), "Rendered chart of 4 members") {
		t.Errorf("log missing progress line:\n%s", logs.String())
	}
}

func TestChartInteractiveLogsThroughSpinner(t *testing.T) {
	dir := t.TempDir()
	input := writeRoster(t, dir, rosterCSV)

	c, _, logs := newTestCLI()
	c.Interactive = true
	if err := run(c, input, "-o", filepath.Join(dir, "team.png"), "--dpi", "30"); err != nil {
		t.Fatalf("run: %v\n%s", err, logs.String())
	}

	for _, stage := range []string{"loaded roster", "computed layout", "rendered outputs"} {
		found := false
		for _, l := range visibleLines(logs.String()) {
			if strings.Contains(l, stage) {
				found = true
				if strings.Contains(l, "Drawing chart...") {
					t.Errorf("log line mixed with spinner frame: %q", l)
				}
			}
		}
		if !found {
			t.Errorf("log missing %q:\n%s", stage, logs.String())
		}
	}
}

func TestChartSuggestedNameWhenNotInteractive(t *testing.T) {
	dir := t.TempDir()
	input := writeRoster(t, dir, rosterCSV)
	t.Chdir(dir)

	c, _, _ := newTestCLI()
	if err := run(c, input, "--dpi", "30"); err != nil {
		t.Fatal(err)
	}

	matches, _ := filepath.Glob(filepath.Join(dir, "org_chart_*.png"))
	if len(matches) != 1 {
		t.Errorf("got %v, want one time-stamped png", matches)
	}
}

func TestChartErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"missing input", []string{filepath.Join(dir, "missing.csv")}, errors.ErrCodeFileNotFound},
		{"bad format", []string{writeRoster(t, dir, rosterCSV), "-f", "gif"}, errors.ErrCodeInvalidFormat},
		{"bad dpi", []string{writeRoster(t, dir, rosterCSV), "--dpi=-5"}, errors.ErrCodeInvalidConfig},
		{"missing config", []string{writeRoster(t, dir, rosterCSV), "--config", filepath.Join(dir, "style.toml")}, errors.ErrCodeFileNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _, _ := newTestCLI()
			err := run(c, append(tt.args, "-o", filepath.Join(dir, "out.png"))...)
			if !errors.Is(err, tt.code) {
				t.Errorf("run = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestLayersCommand(t *testing.T) {
	input := writeRoster(t, t.TempDir(), rosterCSV)
	c, stdout, _ := newTestCLI()

	if err := run(c, "layers", input); err != nil {
		t.Fatal(err)
	}

	got := stdout.String()
	for _, want := range []string{"Generations", "Rita Root (root)", "Alice Smith (a), Bob Brown (b)", "Carol Jones (c)"} {
		if !strings.Contains(got, want) {
			t.Errorf("layers output missing %q:\n%s", want, got)
		}
	}
}

func TestLoadStyle(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "style.toml")
	if err := os.WriteFile(path, []byte("dpi = 150\nmember_name_wrap = 20\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("ORGCHART_MEMBER_NAME_WRAP", "8")

	s, err := loadStyle(path, 0)
	if err != nil {
		t.Fatal(err)
	}
	if s.DPI != 150 {
		t.Errorf("DPI = %d, want 150 from file", s.DPI)
	}
	if s.MemberNameWrap != 8 {
		t.Errorf("MemberNameWrap = %d, want 8 from environment", s.MemberNameWrap)
	}

	s, err = loadStyle(path, 72)
	if err != nil {
		t.Fatal(err)
	}
	if s.DPI != 72 {
		t.Errorf("DPI = %d, want 72 from flag", s.DPI)
	}
}

func TestDestination(t *testing.T) {
	c, _, _ := newTestCLI()

	if got, ok := c.destination("chart.png").(pipeline.FixedPath); !ok || got != "chart.png" {
		t.Errorf("destination with output = %#v", c.destination("chart.png"))
	}

	p, err := c.destination("").Resolve(context.Background(), "org_chart_1.png")
	if err != nil || p != "org_chart_1.png" {
		t.Errorf("non-interactive destination = %q, %v", p, err)
	}

	c.Interactive = true
	if _, ok := c.destination("").(*promptResolver); !ok {
		t.Errorf("interactive destination = %T, want *promptResolver", c.destination(""))
	}
}

func TestCompletion(t *testing.T) {
	c, stdout, _ := newTestCLI()
	if err := run(c, "completion", "bash"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stdout.String(), "orgchart") {
		t.Error("bash completion does not name the command")
	}

	tests := []struct {
		flag string
		want []string
	}{
		{"--ordering", []string{"insertion", "barycentric"}},
		{"--format", []string{"png", "svg", "dot", "json"}},
	}
	for _, tt := range tests {
		c, stdout, _ := newTestCLI()
		if err := run(c, "__complete", tt.flag, ""); err != nil {
			t.Fatal(err)
		}
		for _, w := range tt.want {
			if !strings.Contains(stdout.String(), w) {
				t.Errorf("%s completions missing %q:\n%s", tt.flag, w, stdout.String())
			}
		}
	}
}
