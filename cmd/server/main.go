package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/globalpulse/news-api/internal/application"
	"github.com/globalpulse/news-api/internal/transport/server"
)

var (
	Version   string = "dev"
	Commit    string = "unknown"
	BuildTime string = "unknown"
)

func main() {
	var (
		showHelp    = flag.Bool("help", false, "Show help message")
		showVersion = flag.Bool("version", false, "Show version information")
	)
	flag.Parse()

	if *showHelp {
		fmt.Printf("Global Pulse News API Server\n\n")
		fmt.Printf("Usage: %s [options]\n\n", os.Args[0])
		fmt.Printf("Options:\n")
		flag.PrintDefaults()
		fmt.Printf("\nEnvironment Variables:\n")
		fmt.Printf("  PORT                  Server port (default: 8080)\n")
		fmt.Printf("  HOST                  Server host (default: 0.0.0.0)\n")
		fmt.Printf("  FEED_PROXY_BASE_URL   RSS-to-JSON proxy endpoint\n")
		fmt.Printf("  FEED_FETCH_MODE       proxy or direct (default: proxy)\n")
		fmt.Printf("  NEWS_BATCH_SIZE       Front-page batch size (default: 12)\n")
		fmt.Printf("  NEWS_CACHE_TTL        Front-page cache TTL (default: 5m)\n")
		fmt.Printf("  NEWS_POLL_SCHEDULE    Poller cron schedule (default: @every 15s)\n")
		fmt.Printf("  GCS_BUCKET            Article store bucket (empty: in-memory)\n")
		fmt.Printf("  GEMINI_API_KEY        Chat assistant API key (empty: disabled)\n")
		fmt.Printf("  ADMIN_AUTH_TOKEN      Bearer token for /refresh (empty: open)\n")
		os.Exit(0)
	}

	if *showVersion {
		fmt.Printf("Global Pulse News API Server\n")
		fmt.Printf("Version: %s\n", Version)
		fmt.Printf("Commit: %s\n", Commit)
		fmt.Printf("Build Time: %s\n", BuildTime)
		os.Exit(0)
	}

	app, err := application.New()
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}
	defer app.Close()

	router := server.NewRouter(app)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", app.Config.Host, app.Config.Port),
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Incremental poller: one random feed per tick into the live feed.
	c := cron.New()
	_, err = c.AddFunc(app.Config.PollSchedule, func() {
		tickCtx, tickCancel := context.WithTimeout(ctx, 30*time.Second)
		defer tickCancel()
		app.News.PollOnce(tickCtx)
	})
	if err != nil {
		log.Fatalf("Failed to schedule poller: %v", err)
	}
	log.Printf("📅 Scheduled incremental poller: %s", app.Config.PollSchedule)

	c.Start()
	defer c.Stop()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("🚀 Starting server on %s:%s", app.Config.Host, app.Config.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-sigChan
	log.Println("🛑 Shutting down server...")

	cancel()
	c.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	log.Println("✅ Server stopped")
}
