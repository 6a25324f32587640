// ABOUTME: Main entry point for the LexAssist API servers
// ABOUTME: Wires together all components and starts the three HTTP services

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lexassist-api/api"
	"lexassist-api/api/handlers"
	"lexassist-api/core/advisor"
	"lexassist-api/core/interfaces"
	"lexassist-api/core/kanoon"
	"lexassist-api/core/news"
	stdhttp "lexassist-api/infrastructure/http/standard"
	"lexassist-api/infrastructure/llm/openai"
	"lexassist-api/infrastructure/logger/structured"
	"lexassist-api/pkg/config"
)

const version = "1.0.0"

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := structured.NewLogger(structured.Config{
		Level: cfg.Log.Level,
		File:  cfg.Log.File,
	})
	logger.Info("Starting LexAssist API", map[string]interface{}{
		"advisor_port": cfg.Advisor.Port,
		"kanoon_port":  cfg.Kanoon.Port,
		"news_port":    cfg.News.Port,
	})

	httpClient := stdhttp.NewStandardHTTPClient(30 * time.Second)

	deps := interfaces.Dependencies{
		HTTPClient: httpClient,
		Logger:     logger,
	}

	chatModel := openai.NewClient(openai.Config{
		APIKey: cfg.OpenAI.APIKey,
		Model:  cfg.OpenAI.Model,
	})

	kanoonService := kanoon.NewService(deps, kanoon.Config{
		BaseURL: cfg.KanoonAPI.BaseURL,
		APIKey:  cfg.KanoonAPI.APIKey,
	})
	advisorService := advisor.NewService(deps, chatModel, kanoonService)
	newsService := news.NewService(deps, chatModel, news.Config{
		BaseURL: cfg.NewsAPI.BaseURL,
		APIKey:  cfg.NewsAPI.APIKey,
	})

	apiConfig := api.APIConfig{Logger: logger}

	advisorAPI, advisorRouter := api.NewAPIWithMiddleware("LexAssist Advisor API", version, apiConfig)
	handlers.NewAdvisorHandler(advisorService).RegisterRoutes(advisorAPI)

	kanoonAPI, kanoonRouter := api.NewAPIWithMiddleware("LexAssist Kanoon API", version, apiConfig)
	handlers.NewKanoonHandler(kanoonService).RegisterRoutes(kanoonAPI)

	newsAPI, newsRouter := api.NewAPIWithMiddleware("LexAssist News API", version, apiConfig)
	handlers.NewNewsHandler(newsService).RegisterRoutes(newsAPI)

	servers := []*http.Server{
		newServer(cfg.Advisor.Port, advisorRouter),
		newServer(cfg.Kanoon.Port, kanoonRouter),
		newServer(cfg.News.Port, newsRouter),
	}

	for _, srv := range servers {
		srv := srv
		go func() {
			logger.Info("HTTP server starting", map[string]interface{}{
				"addr": srv.Addr,
			})
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Error("HTTP server failed", map[string]interface{}{
					"addr":  srv.Addr,
					"error": err.Error(),
				})
				os.Exit(1)
			}
		}()
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down servers", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	for _, srv := range servers {
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("Server shutdown failed", map[string]interface{}{
				"addr":  srv.Addr,
				"error": err.Error(),
			})
		}
	}

	logger.Info("Servers stopped", nil)
}

func newServer(port string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         ":" + port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}
