// Package browser opens URLs in the system's default browser.
package browser

import (
	"fmt"
	"os/exec"
	"runtime"
)

var (
	ExecCommand = exec.Command
	goos        = runtime.GOOS
)

// Command returns the program and arguments that hand url to the
// OS-registered default handler on the current platform.
func Command(url string) (string, []string, error) {
	switch goos {
	case "darwin":
		return "open", []string{url}, nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return "xdg-open", []string{url}, nil
	case "windows":
		// The empty argument is the window title; without it start treats
		// a quoted URL as the title.
		return "cmd", []string{"/c", "start", "", url}, nil
	default:
		return "", nil, fmt.Errorf("unsupported platform: %s", goos)
	}
}

// Open opens the default browser to the specified URL.
// The opener is started and not waited on.
func Open(url string) error {
	name, args, err := Command(url)
	if err != nil {
		return err
	}
	if err := ExecCommand(name, args...).Start(); err != nil {
		return fmt.Errorf("starting %s: %w", name, err)
	}
	return nil
}
