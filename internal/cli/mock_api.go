package cli

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/rshade/slayerdex/internal/mockapi"
)

const (
	defaultMockAddr   = "127.0.0.1:8089"
	shutdownTimeout   = 5 * time.Second
	readHeaderTimeout = 5 * time.Second
)

// NewMockAPICmd creates the mock-api command, which serves the embedded
// fixture characters over HTTP.
func NewMockAPICmd() *cobra.Command {
	var (
		addr       string
		shape      string
		numericIDs bool
	)

	cmd := &cobra.Command{
		Use:   "mock-api",
		Short: "Serve a fake character API for offline use",
		Long: `Serves the built-in fixture characters at /api/v1/characters, answering
?limit=N and ?id=X like the public API. Point the client at it with --api-url.`,
		Example: `  slayerdex mock-api --addr 127.0.0.1:8089 --shape bare
  slayerdex --api-url http://127.0.0.1:8089/api/v1 list`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := mockapi.ParseShape(shape)
			if err != nil {
				return err
			}
			handler, err := mockapi.NewFromFixtures(mockapi.DefaultPrefix, s)
			if err != nil {
				return err
			}
			handler.NumericIDs = numericIDs

			ln, err := net.Listen("tcp", addr)
			if err != nil {
				return fmt.Errorf("listening on %s: %w", addr, err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			cmd.Printf("Serving %d characters (%s) at http://%s%s/characters\n",
				len(handler.Characters), s, ln.Addr(), mockapi.DefaultPrefix)
			return serveMockAPI(ctx, ln, handler)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", defaultMockAddr, "listen address")
	cmd.Flags().StringVar(&shape, "shape", string(mockapi.ShapeWrapped), "response shape: wrapped or bare")
	cmd.Flags().BoolVar(&numericIDs, "numeric-ids", true, "encode ids as JSON numbers")
	return cmd
}

// serveMockAPI serves handler on ln until ctx is cancelled.
func serveMockAPI(ctx context.Context, ln net.Listener, handler http.Handler) error {
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serving mock API: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		logger.Debug().Msg("shutting down mock API")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
