package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/sarchlab/openkit/action"
	"github.com/sarchlab/openkit/logging"
	"github.com/sarchlab/openkit/monitoring"
	"github.com/sarchlab/openkit/recording"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a small workload of nested actions.",
	Long: "`demo` enters a few root actions with children, reports values " +
		"and errors on them and leaves the roots, which closes any child " +
		"left open. Records go to the sink selected by OPENKIT_SINK.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		withMonitor, _ := cmd.Flags().GetBool("monitor")
		openBrowser, _ := cmd.Flags().GetBool("open")

		return runDemoCommand(cmd.Context(), withMonitor, openBrowser)
	},
}

func init() {
	demoCmd.Flags().Bool("monitor", false,
		"Serve the monitoring API while the demo runs and wait for Ctrl-C.")
	demoCmd.Flags().Bool("open", false,
		"Open the monitoring API in a browser. Implies --monitor.")
	rootCmd.AddCommand(demoCmd)
}

func runDemoCommand(ctx context.Context, withMonitor, openBrowser bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger := newLogger(cfg, os.Stderr, logFormat(cfg, os.Stderr))

	sinks, err := buildSink(cfg, logger)
	if err != nil {
		return err
	}

	beacon := newBeacon(cfg, sinks.Sink())

	var m *monitoring.Monitor
	if withMonitor || openBrowser {
		m = monitoring.NewMonitor().WithPortNumber(cfg.MonitorPort)
		if _, err := m.StartServer(); err != nil {
			return err
		}

		if openBrowser {
			if err := m.OpenInBrowser(); err != nil {
				logger.Warning("cannot open browser: " + err.Error())
			}
		}
	}

	roots := runDemo(logger, beacon, m)
	logger.Info(fmt.Sprintf("demo finished with %d root actions", len(roots)))

	if m != nil {
		ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
		logger.Info("monitoring is running, press Ctrl-C to stop")
		<-ctx.Done()
		stop()

		shutdownCtx, cancel := context.WithTimeout(
			context.Background(), 5*time.Second)
		defer cancel()

		if err := m.Shutdown(shutdownCtx); err != nil {
			logger.Error("monitor shutdown: " + err.Error())
		}
	}

	closeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if dropped := sinks.async.Dropped(); dropped > 0 {
		logger.Warning(fmt.Sprintf("%d records were dropped", dropped))
	}

	return sinks.Close(closeCtx)
}

// runDemo drives the demo workload. Roots are registered with m when it is
// not nil.
func runDemo(
	logger logging.Logger,
	recorder recording.Recorder,
	m *monitoring.Monitor,
) []*action.RootActionImpl {
	checkout := action.NewRootAction(logger, recorder, "checkout")
	search := action.NewRootAction(logger, recorder, "search")

	if m != nil {
		m.RegisterRootAction(checkout)
		m.RegisterRootAction(search)
	}

	validate := checkout.EnterAction("validate cart")
	validate.ReportIntValue("items", 3).
		ReportDoubleValue("total", 42.5).
		LeaveAction()

	charge := checkout.EnterAction("charge card")
	charge.ReportStringValue("provider", "acme").
		ReportError("declined", 402, "insufficient funds")

	// The charge is still open here and gets closed with its root.
	checkout.ReportEvent("retry scheduled")
	checkout.LeaveAction()

	// Entering with an empty name only logs a warning.
	search.EnterAction("").ReportEvent("ignored")

	query := search.EnterAction("query index")
	query.ReportEvent("cache miss")
	query.LeaveAction()
	search.LeaveAction()

	return []*action.RootActionImpl{checkout, search}
}
