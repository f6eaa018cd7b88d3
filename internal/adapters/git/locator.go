package git

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"regexp"
	"runtime"
	"strings"

	"github.com/xvierd/sglink/internal/logging"
	"github.com/xvierd/sglink/internal/ports"
)

// DefaultExecutable is the bare command name resolved through PATH.
const DefaultExecutable = "git"

// RegistryView selects which registry view reg.exe reads.
type RegistryView string

const (
	ViewDefault RegistryView = ""
	View64      RegistryView = "64"
	View32      RegistryView = "32"
)

// Arg returns the reg.exe flag for the view, or "" for the default view.
func (v RegistryView) Arg() string {
	switch v {
	case View64:
		return "/reg:64"
	case View32:
		return "/reg:32"
	default:
		return ""
	}
}

// RegistryProbe is one Git for Windows install-location key to query.
type RegistryProbe struct {
	Key  string
	View RegistryView
}

// DefaultRegistryProbes are tried in order: user keys before machine keys,
// default view before 64-bit view before 32-bit view.
var DefaultRegistryProbes = []RegistryProbe{
	{Key: `HKCU\SOFTWARE\GitForWindows`, View: ViewDefault},
	{Key: `HKLM\SOFTWARE\GitForWindows`, View: ViewDefault},
	{Key: `HKCU\SOFTWARE\GitForWindows`, View: View64},
	{Key: `HKLM\SOFTWARE\GitForWindows`, View: View64},
	{Key: `HKCU\SOFTWARE\GitForWindows`, View: View32},
	{Key: `HKLM\SOFTWARE\GitForWindows`, View: View32},
}

var errInstallPathNotFound = errors.New("InstallPath not found in registry output")

var installPathPattern = regexp.MustCompile(`(?i)InstallPath\s+REG_SZ\s+([^\r\n]+)\s*\r?\n`)

// QueryFunc runs an external command and returns its stdout.
type QueryFunc func(ctx context.Context, name string, args ...string) (string, error)

// Locator implements ports.GitLocator.
type Locator struct {
	configured string
	goos       string
	probes     []RegistryProbe
	query      QueryFunc
	logger     logging.Logger
}

// LocatorOption configures a Locator.
type LocatorOption func(*Locator)

// WithGOOS overrides the operating system the locator behaves as.
func WithGOOS(goos string) LocatorOption {
	return func(l *Locator) { l.goos = goos }
}

// WithQueryFunc replaces the function used to run reg.exe.
func WithQueryFunc(q QueryFunc) LocatorOption {
	return func(l *Locator) { l.query = q }
}

// WithProbes replaces the registry probe list.
func WithProbes(probes []RegistryProbe) LocatorOption {
	return func(l *Locator) { l.probes = probes }
}

// NewLocator creates a locator. configured is the user's git path override.
func NewLocator(configured string, logger logging.Logger, opts ...LocatorOption) *Locator {
	if logger == nil {
		logger = logging.NewNoopLogger()
	}
	l := &Locator{
		configured: strings.TrimSpace(configured),
		goos:       runtime.GOOS,
		probes:     DefaultRegistryProbes,
		query:      runQuery,
		logger:     logger,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Ensure Locator implements ports.GitLocator.
var _ ports.GitLocator = (*Locator)(nil)

// Locate returns the git executable to invoke. It never fails and falls back
// to DefaultExecutable.
func (l *Locator) Locate(ctx context.Context) string {
	if l.configured != "" {
		return l.configured
	}

	if l.goos != "windows" {
		return DefaultExecutable
	}

	// Git for Windows is normally not on PATH; its install location lives in the registry.
	for _, probe := range l.probes {
		path, err := l.queryInstallPath(ctx, probe)
		if err == nil {
			l.logger.Debug("located git in registry", "key", probe.Key, "view", string(probe.View), "path", path)
			return path
		}
		l.logger.Debug("registry probe failed", "key", probe.Key, "view", string(probe.View), "error", err.Error())
	}

	l.logger.Debug("none of the known git registry keys were found, using PATH")
	return DefaultExecutable
}

func (l *Locator) queryInstallPath(ctx context.Context, probe RegistryProbe) (string, error) {
	args := []string{"query", probe.Key}
	if arg := probe.View.Arg(); arg != "" {
		args = append(args, arg)
	}

	out, err := l.query(ctx, "reg", args...)
	if err != nil {
		return "", fmt.Errorf("failed to query %s: %w", probe.Key, err)
	}

	installPath, err := ParseInstallPath(out)
	if err != nil {
		return "", err
	}
	return installPath + `\bin\git`, nil
}

// ParseInstallPath extracts the InstallPath value from `reg query` output.
func ParseInstallPath(output string) (string, error) {
	m := installPathPattern.FindStringSubmatch(output)
	if m == nil {
		return "", errInstallPathNotFound
	}
	path := strings.TrimSpace(m[1])
	if path == "" {
		return "", errInstallPathNotFound
	}
	return path, nil
}

func runQuery(ctx context.Context, name string, args ...string) (string, error) {
	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		return "", err
	}
	return string(out), nil
}
