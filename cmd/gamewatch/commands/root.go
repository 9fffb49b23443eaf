// Package commands is the gamewatch command tree. Every invocation restores the saved
// session, visits one page through the route guard and exits.
package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"sort"

	"github.com/MrEthical07/gamewatch"
	otelexport "github.com/MrEthical07/gamewatch/metrics/export/otel"
	"github.com/MrEthical07/gamewatch/metrics/export/prometheus"
	"github.com/MrEthical07/gamewatch/notify"
	"github.com/MrEthical07/gamewatch/view"
	"github.com/spf13/cobra"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

var (
	errRedirected    = errors.New("redirected")
	errMetricsFormat = errors.New("unknown metrics format")
)

// env is the state shared by one command invocation.
type env struct {
	configFile    string
	metricsFormat string
	ephemeral     bool

	out    io.Writer
	errOut io.Writer

	app      *gamewatch.App
	reader   *sdkmetric.ManualReader
	exporter *otelexport.Exporter
}

// Execute runs the command line and returns the process exit code.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	e := &env{out: stdout, errOut: stderr}
	root := newRootCommand(e)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if finishErr := e.finish(ctx); err == nil {
		err = finishErr
	}
	if err != nil {
		if !view.Reported(err) {
			fmt.Fprintln(stderr, "error:", err)
		}
		return 1
	}
	return 0
}

func newRootCommand(e *env) *cobra.Command {
	root := &cobra.Command{
		Use:           "gamewatch",
		Short:         "Track game prices, wishlists and reviews from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return e.start(cmd.Context())
		},
	}

	root.PersistentFlags().StringVarP(&e.configFile, "config", "c", "", "config file (default $HOME/.gamewatch/config.yaml)")
	root.PersistentFlags().BoolVar(&e.ephemeral, "ephemeral", false, "keep the session in memory for this invocation only")
	root.PersistentFlags().StringVar(&e.metricsFormat, "metrics", "", "print client metrics to stderr after the command: prometheus or otel")

	root.AddCommand(
		newRegisterCommand(e),
		newLoginCommand(e),
		newLogoutCommand(e),
		newWhoamiCommand(e),
		newVerifyCommand(e),
		newProfileCommand(e),
		newGamesCommand(e),
		newWishlistCommand(e),
		newReviewsCommand(e),
		newUsersCommand(e),
		newNavCommand(e),
	)
	return root
}

func (e *env) start(ctx context.Context) error {
	switch e.metricsFormat {
	case "", "prometheus", "otel":
	default:
		return fmt.Errorf("%w: %q", errMetricsFormat, e.metricsFormat)
	}

	cfg, err := gamewatch.LoadConfig(e.configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if e.metricsFormat != "" {
		cfg.Metrics.Enabled = true
	}
	if e.ephemeral {
		cfg.Storage.Backend = gamewatch.StorageMemory
	}

	log, err := gamewatch.NewLogger(cfg.Log, e.errOut)
	if err != nil {
		return err
	}

	app, err := gamewatch.New().
		WithConfig(cfg).
		WithLogger(log).
		WithNotifier(notify.NewConsole(e.errOut)).
		Build()
	if err != nil {
		return err
	}
	e.app = app

	if e.metricsFormat == "otel" {
		e.reader = sdkmetric.NewManualReader()
		provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(e.reader))
		if e.exporter, err = otelexport.New(provider.Meter("gamewatch"), app); err != nil {
			return err
		}
	}

	return app.Start(ctx)
}

// finish prints the requested metrics and releases the App.
func (e *env) finish(ctx context.Context) error {
	if e.app == nil {
		return nil
	}

	var err error
	switch e.metricsFormat {
	case "prometheus":
		_, err = prometheus.New(e.app).WriteTo(e.errOut)
	case "otel":
		err = e.printOTel(ctx)
		if closeErr := e.exporter.Close(); err == nil {
			err = closeErr
		}
	}

	if closeErr := e.app.Close(); err == nil {
		err = closeErr
	}
	return err
}

func (e *env) printOTel(ctx context.Context) error {
	var rm metricdata.ResourceMetrics
	if err := e.reader.Collect(ctx, &rm); err != nil {
		return err
	}

	values := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			switch data := m.Data.(type) {
			case metricdata.Sum[int64]:
				for _, dp := range data.DataPoints {
					values[m.Name] += dp.Value
				}
			case metricdata.Gauge[int64]:
				for _, dp := range data.DataPoints {
					values[m.Name] += dp.Value
				}
			}
		}
	}

	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(e.errOut, "%s %d\n", name, values[name])
	}
	return nil
}

// visit navigates to target and fails when the guard sent the user elsewhere.
func (e *env) visit(ctx context.Context, target string) error {
	want, err := url.Parse(target)
	if err != nil {
		return err
	}
	loc, err := e.app.Router().Navigate(ctx, target)
	if err != nil {
		return err
	}
	if loc.Path != want.Path {
		return fmt.Errorf("%w to %s", errRedirected, loc.Path)
	}
	return nil
}

// password returns the flag value or GAMEWATCH_PASSWORD.
func password(flag string) string {
	if flag != "" {
		return flag
	}
	return os.Getenv("GAMEWATCH_PASSWORD")
}
