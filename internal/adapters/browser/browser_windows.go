//go:build windows

package browser

import "os/exec"

// openCommand opens a URL in the default browser on Windows
func openCommand(url string) *exec.Cmd {
	return exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
}
