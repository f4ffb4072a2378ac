package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/thatcatcamp/obskit/internal/config"
	"github.com/thatcatcamp/obskit/internal/fonts"
	"github.com/thatcatcamp/obskit/internal/handlers"
	"github.com/thatcatcamp/obskit/internal/middleware"
	"github.com/thatcatcamp/obskit/internal/poller"
	"github.com/thatcatcamp/obskit/internal/settings"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Server operations",
	Long:  "Start and manage the obskit HTTP server",
}

var serverStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the HTTP server",
	Run: func(cmd *cobra.Command, args []string) {
		store, err := openStore()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		manager := settings.NewManager(store)
		current := manager.Load()
		log.Printf("Loaded settings: theme=%s gradient=%s setup=%v", current.Theme, current.Gradient, current.SetupComplete)

		pollTimeout := config.GetDuration("poll.timeout")
		client := &http.Client{Timeout: pollTimeout}

		fontService := fonts.NewService(store,
			fonts.WithAPIURL(config.GetString("fonts.api_url")),
			fonts.WithTTL(config.GetDuration("fonts.cache_ttl")),
			fonts.WithHTTPClient(client),
		)

		hub := poller.NewHub(ctx, client)
		defer hub.Close()

		// Rate limiter for the counter endpoints
		limiter := middleware.NewRateLimiter(config.GetInt("ratelimit.capacity"), config.GetDuration("ratelimit.interval"))
		defer limiter.Stop()

		h := handlers.New(handlers.Deps{
			Settings:        manager,
			UI:              settings.NewUIState(store),
			Credentials:     settings.NewCredentialStore(store),
			Fonts:           fontService,
			Hub:             hub,
			HTTPClient:      client,
			PollTimeout:     pollTimeout,
			DefaultPollRate: config.GetFloat64("poll.default_interval"),
			CustomFonts:     config.GetStringSlice("fonts.custom"),
			PollHosts:       config.GetStringSlice("poll.allowed_hosts"),
			BaseURL:         config.GetString("server.base_url"),
		})

		// Create Gin router
		r := gin.Default()
		h.Routes(r, handlers.RouteOptions{
			Limiter:      limiter,
			Blocklist:    config.GetStringSlice("server.blocked_ips"),
			APIAllowlist: config.GetStringSlice("server.api_allowed_ips"),
			CSRF:         config.GetBool("server.csrf"),
		})

		httpAddr := fmt.Sprintf(":%s", config.GetString("server.port"))
		server := &http.Server{
			Addr:              httpAddr,
			Handler:           r,
			ReadHeaderTimeout: 10 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			fmt.Printf("Starting HTTP server on %s\n", httpAddr)
			fmt.Printf("Overlays at %s/overlays/<kind>\n", config.GetString("server.base_url"))
			errCh <- server.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
				os.Exit(1)
			}
		case <-ctx.Done():
			log.Println("Shutting down server...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := server.Shutdown(shutdownCtx); err != nil {
				log.Printf("Server shutdown failed: %v", err)
			}
		}
	},
}

func init() {
	serverCmd.AddCommand(serverStartCmd)
	rootCmd.AddCommand(serverCmd)
}
