package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Mr-Dark-debug/tasks/internal/config"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// executeCommand runs a cobra command with args and returns captured output
func executeCommand(root *cobra.Command, args ...string) (output string, err error) {
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err = root.Execute()
	return buf.String(), err
}

// isolateConfig points the config directory at an empty temp dir and
// runs from there, so no real config file leaks into the test.
func isolateConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Chdir(dir)
	return dir
}

func TestRootCommand(t *testing.T) {
	root := NewRootCmd(viper.New())

	if root.Use != "tasks" {
		t.Errorf("root.Use = %q, want %q", root.Use, "tasks")
	}

	cmdMap := make(map[string]bool)
	for _, c := range root.Commands() {
		cmdMap[c.Name()] = true
	}
	for _, expected := range []string{"version", "config"} {
		if !cmdMap[expected] {
			t.Errorf("expected subcommand %q not found", expected)
		}
	}

	for _, flag := range []string{"no-alt-screen", "no-mouse", "log", "log-level", "log-file"} {
		if root.Flags().Lookup(flag) == nil {
			t.Errorf("expected flag --%s", flag)
		}
	}
	if root.PersistentFlags().ShorthandLookup("c") == nil {
		t.Error("expected -c shorthand for --config")
	}
}

func TestVersionCommand(t *testing.T) {
	isolateConfig(t)

	out, err := executeCommand(NewRootCmd(viper.New()), "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.Contains(out, "tasks v"+Version) {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestConfigCommandShowsDefaults(t *testing.T) {
	isolateConfig(t)

	out, err := executeCommand(NewRootCmd(viper.New()), "config")
	if err != nil {
		t.Fatalf("config failed: %v", err)
	}
	for _, want := range []string{
		"ui.title = Simple Todo App",
		"ui.placeholder = Enter a task",
		"ui.char_limit = 0",
		"logging.level = info",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestConfigCommandReadsFileAndEnv(t *testing.T) {
	dir := isolateConfig(t)

	path := filepath.Join(dir, "custom.yaml")
	body := "ui:\n  title: Groceries\n  char_limit: 40\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	t.Setenv("TASKS_UI_PLACEHOLDER", "What next?")

	out, err := executeCommand(NewRootCmd(viper.New()), "--config", path, "config")
	if err != nil {
		t.Fatalf("config failed: %v", err)
	}
	for _, want := range []string{
		"# " + path,
		"ui.title = Groceries",
		"ui.char_limit = 40",
		"ui.placeholder = What next?",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestMissingExplicitConfigFails(t *testing.T) {
	dir := isolateConfig(t)

	_, err := executeCommand(NewRootCmd(viper.New()),
		"--config", filepath.Join(dir, "nope.yaml"), "version")
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
	if !strings.Contains(err.Error(), "failed to read config") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestInvalidConfigStopsBeforeUI(t *testing.T) {
	isolateConfig(t)
	t.Setenv("TASKS_UI_CHAR_LIMIT", "-3")

	_, err := executeCommand(NewRootCmd(viper.New()))
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "ui.char_limit") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestNoFlagsTurnOffScreenAndMouse(t *testing.T) {
	tests := []struct {
		name          string
		args          []string
		wantAltScreen bool
		wantMouse     bool
	}{
		{"defaults", nil, true, true},
		{"no mouse", []string{"--no-mouse"}, true, false},
		{"no alt screen", []string{"--no-alt-screen"}, false, true},
		{"both", []string{"--no-alt-screen", "--no-mouse"}, false, false},
		{"explicit false", []string{"--no-mouse=false"}, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			root := NewRootCmd(v)
			if err := root.ParseFlags(tt.args); err != nil {
				t.Fatalf("ParseFlags(%v): %v", tt.args, err)
			}
			config.SetDefaultsOn(v)
			applyFlags(root, v)

			if got := v.GetBool("ui.alt_screen"); got != tt.wantAltScreen {
				t.Errorf("ui.alt_screen = %v, want %v", got, tt.wantAltScreen)
			}
			if got := v.GetBool("ui.mouse"); got != tt.wantMouse {
				t.Errorf("ui.mouse = %v, want %v", got, tt.wantMouse)
			}
		})
	}
}

func TestUnsetNoFlagKeepsConfigValue(t *testing.T) {
	isolateConfig(t)
	t.Setenv("TASKS_UI_MOUSE", "false")

	v := viper.New()
	root := NewRootCmd(v)
	if err := initConfig(v, ""); err != nil {
		t.Fatalf("initConfig: %v", err)
	}
	applyFlags(root, v)

	if v.GetBool("ui.mouse") {
		t.Error("ui.mouse should stay false from the environment")
	}
}

func TestConsoleLogAfterProgramExits(t *testing.T) {
	isolateConfig(t)
	t.Setenv("TASKS_LOGGING_CONSOLE", "info")

	root := NewRootCmd(viper.New())
	// ctrl+c quits straight away.
	root.SetIn(strings.NewReader("\x03"))

	out, err := executeCommand(root, "--no-alt-screen", "--no-mouse")
	if err != nil {
		t.Fatalf("run failed: %v\n%s", err, out)
	}
	for _, want := range []string{"msg=starting", "msg=exiting", "tasks=0"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestConsoleOffIsSilent(t *testing.T) {
	isolateConfig(t)
	t.Setenv("TASKS_LOGGING_CONSOLE", "off")

	root := NewRootCmd(viper.New())
	root.SetIn(strings.NewReader("\x03"))

	out, err := executeCommand(root, "--no-alt-screen", "--no-mouse")
	if err != nil {
		t.Fatalf("run failed: %v\n%s", err, out)
	}
	if strings.Contains(out, "msg=") {
		t.Errorf("console log written with logging.console=off:\n%s", out)
	}
}
