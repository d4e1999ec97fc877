//go:build windows

package launcher

// ServerCommand returns the program and arguments that start the dev server.
// npm is a batch script on Windows, so it has to go through cmd.
func ServerCommand() (string, []string) {
	return "cmd", []string{"/c", "npm", "run", "dev"}
}
