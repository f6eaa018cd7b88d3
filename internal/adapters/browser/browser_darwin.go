//go:build darwin

package browser

import "os/exec"

// openCommand opens a URL in the default browser on macOS
func openCommand(url string) *exec.Cmd {
	return exec.Command("open", url)
}
