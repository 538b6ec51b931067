package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redesblock/mopboard/core/dashboard"
	"github.com/redesblock/mopboard/core/nodeapi"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 15 * time.Second

func (c *command) initStartCmd() (err error) {
	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start the dashboard server",
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			if len(args) > 0 {
				return cmd.Help()
			}

			logger, err := newLogger(cmd, c.config.GetString(optionNameVerbosity))
			if err != nil {
				return fmt.Errorf("new logger: %w", err)
			}

			endpoint := c.config.GetString(optionNameNodeEndpoint)
			client, err := nodeapi.New(endpoint, nil)
			if err != nil {
				return fmt.Errorf("node client: %w", err)
			}

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			if status, err := client.Status(ctx); err != nil {
				logger.Warningf("node at %s is not reachable: %v", endpoint, err)
			} else {
				logger.Infof("connected to node at %s, version %s", endpoint, status.Version)
			}

			s := dashboard.New(client, logger, dashboard.Options{
				CORSAllowedOrigins: c.config.GetStringSlice(optionNameCORSAllowedOrigins),
			})

			listenAddr := c.config.GetString(optionNameListenAddr)
			srv := &http.Server{
				Addr:    listenAddr,
				Handler: s,
			}

			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				logger.Infof("dashboard listening on %s", listenAddr)
				if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			})
			g.Go(func() error {
				interrupt := make(chan os.Signal, 1)
				signal.Notify(interrupt, syscall.SIGINT, syscall.SIGTERM)
				select {
				case <-interrupt:
				case <-gctx.Done():
					return nil
				}

				logger.Info("received interrupt, shutting down")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()
				return srv.Shutdown(shutdownCtx)
			})

			return g.Wait()
		},
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return c.config.BindPFlags(cmd.Flags())
		},
	}

	cmd.Flags().String(optionNameListenAddr, ":8080", "dashboard listen address")
	cmd.Flags().StringSlice(optionNameCORSAllowedOrigins, nil, "origins with CORS headers enabled")
	c.setAllFlags(cmd)

	c.root.AddCommand(cmd)

	return nil
}
