package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/GoCodeAlone/pathwaysim/internal/snapshot"
	"github.com/GoCodeAlone/pathwaysim/internal/stream"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the simulation live and stream its trajectory over websocket (spec §6.4a)",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadRunConfig()
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		d, err := buildDriver(cfg)
		if err != nil {
			return err
		}

		hub := stream.NewHub(64)
		go hub.Run()
		defer hub.Stop()

		trajectory := make(chan snapshot.Snapshot, 64)
		stop := make(chan struct{})
		go stream.RunProducer(hub, trajectory, stop)

		mux := http.NewServeMux()
		mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
			if err := hub.ServeWS(w, r); err != nil {
				stream.Logf("client connection ended: %v", err)
			}
		})
		mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprintf(w, "clients=%d\n", hub.ClientCount())
		})

		srv := &http.Server{Addr: serveAddr, Handler: mux}
		srvErr := make(chan error, 1)
		go func() { srvErr <- srv.ListenAndServe() }()
		fmt.Printf("streaming trajectory on ws://%s/ws\n", serveAddr)

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
		defer cancel()

		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				close(stop)
				shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer shutdownCancel()
				return srv.Shutdown(shutdownCtx)
			case err := <-srvErr:
				close(stop)
				if err != nil && err != http.ErrServerClosed {
					return err
				}
				return nil
			case <-ticker.C:
				d.TickLive()
				select {
				case trajectory <- d.Snapshot():
				default:
				}
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8765", "address to serve the websocket trajectory stream on")
}
