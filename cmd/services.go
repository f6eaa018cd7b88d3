package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/xvierd/sglink/internal/adapters/git"
	"github.com/xvierd/sglink/internal/adapters/notification"
	"github.com/xvierd/sglink/internal/adapters/tui"
	"github.com/xvierd/sglink/internal/config"
	"github.com/xvierd/sglink/internal/logging"
	"github.com/xvierd/sglink/internal/ports"
	"github.com/xvierd/sglink/internal/services"
)

// appDeps groups all service-layer dependencies initialized at startup.
type appDeps struct {
	config     *config.Config
	configPath string
	logger     logging.Logger
	workspace  ports.WorkspaceFinder
	links      *services.LinkService
	statusLine *tui.StatusLine
	notifier   *notification.Notifier
	status     ports.StatusReporter
}

// app holds all initialized service dependencies.
// Populated by initializeServices() and accessible to all commands.
var app appDeps

// initializeServices sets up all the required services and adapters.
func initializeServices(cmd *cobra.Command) error {
	var err error
	app.configPath = configFlag
	if app.configPath == "" {
		app.configPath, err = config.GetConfigPath()
	}
	var loadErr error
	if err == nil {
		app.config, loadErr = config.LoadFrom(app.configPath)
	} else {
		loadErr = err
	}
	if loadErr != nil {
		// If config loading fails, use defaults
		app.config = config.DefaultConfig()
	}

	app.logger, err = logging.NewLogger(&app.config.Logging)
	if err != nil {
		app.logger = logging.NewNoopLogger()
	}
	if loadErr != nil {
		app.logger.Warn("failed to load config, using defaults", "error", loadErr.Error())
	}

	if gitPathFlag != "" {
		app.config.Git.Path = gitPathFlag
	}

	app.workspace = git.NewWorkspace()
	app.links = services.NewLinkService(git.NewFactsFactory(app.logger), app.config.Sourcegraph.URL, app.logger)

	app.statusLine = tui.NewStatusLine(cmd.ErrOrStderr(), tui.DefaultTheme())
	app.notifier = notification.New(&app.config.Notifications, app.logger)
	app.status = statusFanout{app.statusLine, app.notifier}

	return nil
}

// statusDuration is how long policy messages stay visible.
func statusDuration() time.Duration {
	return time.Duration(app.config.Status.Duration)
}

// statusFanout shows every status message on all of its reporters.
type statusFanout []ports.StatusReporter

func (f statusFanout) Status(message string, d time.Duration) {
	for _, r := range f {
		r.Status(message, d)
	}
}

// setupSignalHandler sets up a context that cancels on interrupt signals.
func setupSignalHandler() context.Context {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		cancel()
	}()

	return ctx
}
