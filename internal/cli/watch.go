package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/arloliu/teamdraw"
	"github.com/arloliu/teamdraw/internal/metrics"
	"github.com/arloliu/teamdraw/store"
)

func (a *app) watchCommand() *cobra.Command {
	var metricsAddr string

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Follow the published draw and report every change",
		Long: `Follow the published draw until interrupted, printing a line for every
publish and clear. With --metrics-addr the Prometheus metrics of the follower
are served on /metrics.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			reg := prometheus.NewRegistry()
			collector := metrics.NewPrometheus(reg, "")
			s := store.New(store.WithLogger(a.logger), store.WithMetrics(collector))
			events, unsubscribe := s.Subscribe(0)
			defer unsubscribe()

			mgr, stop, err := a.startShared(ctx, teamdraw.WithStore(s), teamdraw.WithMetrics(collector))
			if err != nil {
				return err
			}
			defer stop()

			// The replay during Start already queued an event for a stored draw.
			out := cmd.OutOrStdout()
			if _, ok := mgr.Published(); !ok {
				if _, err := fmt.Fprintln(out, "nothing published"); err != nil {
					return err
				}
			}

			g, gctx := errgroup.WithContext(ctx)
			if metricsAddr != "" {
				srv := &http.Server{
					Addr:              metricsAddr,
					Handler:           metricsMux(reg),
					ReadHeaderTimeout: 10 * time.Second,
				}
				g.Go(func() error {
					a.logger.Info("serving metrics", "addr", metricsAddr)
					if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
						return fmt.Errorf("metrics server: %w", err)
					}

					return nil
				})
				g.Go(func() error {
					<-gctx.Done()
					shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
					defer cancel()

					return srv.Shutdown(shutdownCtx)
				})
			}

			g.Go(func() error {
				for {
					select {
					case <-gctx.Done():
						return nil
					case ev := <-events:
						if err := printEvent(out, ev); err != nil {
							return err
						}
					}
				}
			})

			return g.Wait()
		},
	}

	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address (e.g. :9090)")

	return cmd
}

func metricsMux(reg *prometheus.Registry) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	return mux
}

func printEvent(w io.Writer, ev store.Event) error {
	var err error
	switch ev.Type {
	case store.EventPublished:
		_, err = fmt.Fprintf(w, "version %d published: %d teams, %d people\n",
			ev.Version, ev.Snapshot.Partition.Len(), ev.Snapshot.Partition.TotalMembers())
	case store.EventCleared:
		_, err = fmt.Fprintf(w, "version %d cleared\n", ev.Version)
	}

	return err
}
