//go:build !windows

package launcher

// ServerCommand returns the program and arguments that start the dev server.
func ServerCommand() (string, []string) {
	return "npm", []string{"run", "dev"}
}
