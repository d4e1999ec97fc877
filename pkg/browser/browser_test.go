package browser

import (
	"os"
	"os/exec"
	"reflect"
	"strings"
	"testing"
)

func TestCommand_Good(t *testing.T) {
	const url = "http://localhost:8080"
	tests := map[string][]string{
		"darwin":  {"open", url},
		"linux":   {"xdg-open", url},
		"freebsd": {"xdg-open", url},
		"windows": {"cmd", "/c", "start", "", url},
	}
	origGOOS := goos
	t.Cleanup(func() { goos = origGOOS })

	for platform, want := range tests {
		t.Run(platform, func(t *testing.T) {
			goos = platform
			name, args, err := Command(url)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			got := append([]string{name}, args...)
			if !reflect.DeepEqual(got, want) {
				t.Errorf("expected %v, got %v", want, got)
			}
		})
	}
}

func TestCommand_Bad(t *testing.T) {
	origGOOS := goos
	goos = "plan9"
	t.Cleanup(func() { goos = origGOOS })

	_, _, err := Command("http://localhost:8080")
	if err == nil {
		t.Fatal("expected error for unsupported platform, got nil")
	}
	if !strings.Contains(err.Error(), "plan9") {
		t.Errorf("expected error to name the platform, got: %v", err)
	}
}

func TestOpen_Good(t *testing.T) {
	var gotArgs []string
	origExecCommand := ExecCommand
	ExecCommand = func(command string, args ...string) *exec.Cmd {
		gotArgs = append([]string{command}, args...)
		cs := []string{"-test.run=TestHelperProcess", "--", command}
		cs = append(cs, args...)
		cmd := exec.Command(os.Args[0], cs...)
		cmd.Env = []string{"GO_WANT_HELPER_PROCESS=1"}
		return cmd
	}
	t.Cleanup(func() { ExecCommand = origExecCommand })

	if err := Open("http://localhost:8080"); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if len(gotArgs) == 0 || gotArgs[len(gotArgs)-1] != "http://localhost:8080" {
		t.Errorf("expected URL as last argument, got %v", gotArgs)
	}
}

func TestOpen_Bad(t *testing.T) {
	origExecCommand := ExecCommand
	ExecCommand = func(command string, args ...string) *exec.Cmd {
		return exec.Command("/non/existent/opener")
	}
	t.Cleanup(func() { ExecCommand = origExecCommand })

	if err := Open("http://localhost:8080"); err == nil {
		t.Fatal("expected error when the opener cannot start, got nil")
	}
}

// TestHelperProcess isn't a real test. It's used as a helper for tests that need to mock exec.Command.
func TestHelperProcess(t *testing.T) {
	if os.Getenv("GO_WANT_HELPER_PROCESS") != "1" {
		return
	}
	os.Exit(0)
}
