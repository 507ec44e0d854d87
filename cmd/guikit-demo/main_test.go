package main

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestVersion(t *testing.T) {
	if Version == "" {
		t.Error("Version should not be empty")
	}

	var stdout, stderr bytes.Buffer
	if code := run([]string{"-v"}, &stdout, &stderr); code != 0 {
		t.Fatalf("run(-v) = %d, stderr: %s", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), Version) {
		t.Errorf("expected version in output, got %q", stdout.String())
	}
}

func TestRunDefault(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run(nil, &stdout, &stderr); code != 0 {
		t.Fatalf("run() = %d, stderr: %s", code, stderr.String())
	}

	want := `Client: Testing client code with the Windows GUI toolkit:
Windows checkbox is checked.
Windows checkbox toggled with (You have clicked a Windows button.)

Client: Testing the same client code with the MacOS GUI toolkit:
MacOS checkbox is checked.
MacOS checkbox toggled with (You have clicked a MacOS button.)
`
	if stdout.String() != want {
		t.Errorf("stdout = %q, want %q", stdout.String(), want)
	}
}

func TestRunUnsupportedToolkit(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-toolkit", "motif"}, &stdout, &stderr); code != 1 {
		t.Errorf("run(-toolkit motif) = %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "unsupported toolkit: motif") {
		t.Errorf("unexpected stderr %q", stderr.String())
	}
	if stdout.Len() != 0 {
		t.Errorf("expected no stdout, got %q", stdout.String())
	}
}

func TestRunScriptFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.lua")
	if err := os.WriteFile(path, []byte(`print(toolkit.factory("macos").create_checkbox().check())`), 0o644); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	if code := run([]string{"-script", path}, &stdout, &stderr); code != 0 {
		t.Fatalf("run(-script) = %d, stderr: %s", code, stderr.String())
	}
	if stdout.String() != "MacOS checkbox is checked.\n" {
		t.Errorf("stdout = %q", stdout.String())
	}
}

func TestRunScriptNotFound(t *testing.T) {
	var stdout, stderr bytes.Buffer
	path := filepath.Join(t.TempDir(), "missing.lua")
	if code := run([]string{"-script", path}, &stdout, &stderr); code != 1 {
		t.Errorf("run(-script missing) = %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "Script not found") {
		t.Errorf("unexpected stderr %q", stderr.String())
	}
}

func TestWatchRequiresScript(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-watch"}, &stdout, &stderr); code != 1 {
		t.Errorf("run(-watch) = %d, want 1", code)
	}
}

func TestJSONDebugLogging(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-debug", "-log-format", "json", "-toolkit", "windows"}, &stdout, &stderr); code != 0 {
		t.Fatalf("run() = %d, stderr: %s", code, stderr.String())
	}
	if !strings.Contains(stderr.String(), `"toolkit":"Windows"`) {
		t.Errorf("expected JSON debug record on stderr, got %q", stderr.String())
	}
	if strings.Contains(stdout.String(), "toolkit\"") {
		t.Errorf("log record leaked to stdout: %q", stdout.String())
	}
}

func TestUnknownLogFormat(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-log-format", "xml"}, &stdout, &stderr); code != 2 {
		t.Errorf("run(-log-format xml) = %d, want 2", code)
	}
	if !strings.Contains(stderr.String(), "unknown log format") {
		t.Errorf("unexpected stderr %q", stderr.String())
	}
}

func TestBadFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-nope"}, &stdout, &stderr); code != 2 {
		t.Errorf("run(-nope) = %d, want 2", code)
	}
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"windows", []string{"windows"}},
		{" macos , windows ", []string{"macos", "windows"}},
		{",,windows,", []string{"windows"}},
	}
	for _, tt := range tests {
		if got := splitList(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("splitList(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
