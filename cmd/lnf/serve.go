package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sourcegraph/conc/pool"
	"github.com/spf13/cobra"

	"lookandfeel/internal/logger"
	"lookandfeel/internal/services"
	"lookandfeel/internal/transport"
	"lookandfeel/internal/watch"
	"lookandfeel/pkg/lnftypes"
)

// serveCmd runs the parent process
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve this process's look and feel to child processes",
	Long: `Run as the parent: extract the native look and feel, serve it over HTTP and push a new
snapshot to subscribed children whenever the theme changes. A theme change is signalled by
SIGHUP, by POST /v1/lookandfeel/invalidate, or by edits to the profile file when --watch is set.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("listen", "", "Address to listen on [default: 127.0.0.1:7878]")
	serveCmd.Flags().Bool("watch", false, "Watch the profile file and publish on change")
	serveCmd.Flags().Duration("watch-debounce", 0, "Delay before publishing a burst of profile edits")
	addBackendFlags(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := setupServices(); err != nil {
		return err
	}

	pctx, err := newParentContext(cfg)
	if err != nil {
		return err
	}
	defer pctx.Close()

	srv := transport.NewServer(pctx.Extractor())
	srv.OnChange(logChanges)
	initial := srv.Current()

	listener, err := net.Listen("tcp", cfg.Listen)
	if err != nil {
		return err
	}
	httpServer := &http.Server{
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("Serving look and feel", "addr", listener.Addr().String(), "generation", initial.Generation(), "entries", initial.Len())

	p := pool.New().WithContext(ctx).WithCancelOnError()

	p.Go(func(context.Context) error {
		if err := httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	p.Go(func(ctx context.Context) error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	p.Go(func(ctx context.Context) error {
		hup := make(chan os.Signal, 1)
		signal.Notify(hup, syscall.SIGHUP)
		defer signal.Stop(hup)
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-hup:
				logger.Info("Theme change signalled")
				srv.Publish()
			}
		}
	})

	if cfg.Watch {
		path := watchPath(cfg)
		if path == "" {
			logger.Warn("Nothing to watch: the profile is embedded or the backend is terminal-only")
		} else {
			w, err := watch.New(path, cfg.WatchDebounce, func() { srv.Publish() })
			if err != nil {
				return err
			}
			p.Go(w.Run)
		}
	}

	err = p.Wait()
	logger.Info("Stopped serving", "subscribers", srv.Subscribers())
	return err
}

// logChanges logs what a published table changed.
func logChanges(prev, next *lnftypes.FullLookAndFeel) {
	if prev == nil {
		return
	}
	diff, err := services.GetGlobalDiffService()
	if err != nil {
		return
	}
	changes, err := diff.Diff(prev, next)
	if err != nil {
		logger.Warn("Failed to diff tables", "error", err)
		return
	}
	for _, c := range changes {
		logger.Info("Theme changed", "change", c.String(), "generation", next.Generation())
	}
}
