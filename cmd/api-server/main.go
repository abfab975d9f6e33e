package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"portfoliohub/internal/catalog"
	"portfoliohub/internal/config"
	"portfoliohub/internal/editor"
	"portfoliohub/internal/live"
	"portfoliohub/internal/site"
	"portfoliohub/pkg/database"
	"portfoliohub/pkg/logger"
)

func main() {
	cfg, err := config.Load("portfoliohub.yaml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	zlog, err := logger.New(cfg.Development)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	dbCfg := database.DefaultConfig()
	db := database.MustOpen(dbCfg)
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		zlog.Fatalw("db migrate failed", "err", err)
	}

	repo, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		zlog.Fatalw("load catalog failed", "path", cfg.CatalogPath, "err", err)
	}

	journal := catalog.NewJournal(db)
	applied, err := journal.Replay(context.Background(), repo)
	if err != nil {
		zlog.Fatalw("journal replay failed", "err", err)
	}
	zlog.Infow("catalog loaded", "projects", repo.Len(), "journal_applied", applied)

	router := gin.Default()

	// Optional: avoid "trusted all proxies" warning
	_ = router.SetTrustedProxies([]string{"127.0.0.1"})

	// Start the live feed first (so you notice binding errors early)
	hub := live.NewHub()
	router.GET("/ws", live.WSHandler(hub, zlog))
	feedSrv := live.NewServer(cfg.FeedAddr, hub, zlog)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": dbCfg.Path})
	})

	router.GET("/ready", func(c *gin.Context) {
		stats := hub.Stats()
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":      "not_ready",
				"db_error":    err.Error(),
				"tcp_clients": stats.TCPClients,
				"ws_clients":  stats.WSClients,
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":      "ready",
			"db":          "ok",
			"projects":    repo.Len(),
			"tcp_clients": stats.TCPClients,
			"ws_clients":  stats.WSClients,
		})
	})

	router.GET("/debug", func(c *gin.Context) {
		stats := hub.Stats()
		c.JSON(http.StatusOK, gin.H{
			"db":          dbCfg.Path,
			"catalog":     cfg.CatalogPath,
			"tcp_clients": stats.TCPClients,
			"ws_clients":  stats.WSClients,
		})
	})

	// Browsable pages (public)
	siteHandler, err := site.NewHandler(repo, cfg.AssetsDir, zlog)
	if err != nil {
		zlog.Fatalw("site handler failed", "err", err)
	}
	siteHandler.RegisterRoutes(router)

	// Catalog API (public reads)
	catalogHandler := catalog.NewHandler(repo, journal, hub, zlog)
	catalogHandler.RegisterPublicRoutes(router.Group("/api/projects"))

	// Editor auth
	tokenSvc := editor.TokenService{
		Secret:   []byte(cfg.Auth.JWTSecret),
		Issuer:   cfg.Auth.JWTIssuer,
		Duration: cfg.Auth.JWTDuration,
	}
	editorRepo := editor.NewRepo(db)
	editorHandler := editor.NewHandler(editorRepo, tokenSvc)
	editorHandler.RegisterRoutes(router.Group("/editors"))

	// Maintenance routes (protected)
	protected := router.Group("/api/projects")
	protected.Use(editor.AuthMiddleware(tokenSvc, editorRepo))
	catalogHandler.RegisterProtectedRoutes(protected)

	me := router.Group("/editors")
	me.Use(editor.AuthMiddleware(tokenSvc, editorRepo))
	me.GET("/me", func(c *gin.Context) {
		claims := editor.MustGetClaims(c)
		c.JSON(http.StatusOK, gin.H{
			"id":       claims.EditorID,
			"username": claims.Username,
			"email":    claims.Email,
		})
	})

	httpSrv := &http.Server{
		Addr:    cfg.Addr,
		Handler: router,
	}

	errCh := make(chan error, 2)
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := feedSrv.Run(); err != nil {
			errCh <- err
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		zlog.Infow("HTTP server listening", "addr", cfg.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		zlog.Infow("shutdown signal received", "signal", sig.String())
	case err := <-errCh:
		zlog.Errorw("server error", "err", err)
	}

	zlog.Info("shutting down servers")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		zlog.Errorw("http shutdown error", "err", err)
	}
	if err := feedSrv.Close(); err != nil {
		zlog.Errorw("feed shutdown error", "err", err)
	}

	wg.Wait()
	zlog.Info("servers stopped")
}
