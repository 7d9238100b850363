package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/jomarcello/tradingview-calendar/internal/config"
	"github.com/jomarcello/tradingview-calendar/internal/handler"
	"github.com/jomarcello/tradingview-calendar/internal/pipeline"
	"github.com/jomarcello/tradingview-calendar/internal/relay"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg := config.Load()

	p, err := pipeline.Build(cfg)
	if err != nil {
		log.Fatalf("error building calendar pipeline: %v", err)
	}

	var chatRelay handler.Relay
	if cfg.RelayURL != "" {
		chatRelay = relay.NewTelegramRelay(cfg.RelayURL, cfg.RelayChatID)
	}

	calendarHandler := handler.NewCalendarHandler(p, chatRelay, p.SourceCount())

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}

	if cfg.FrontendURL != "" {
		allowedOrigins = append(allowedOrigins, cfg.FrontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.GET("/", calendarHandler.GetRoot)
	r.GET("/test", calendarHandler.GetTest)
	r.GET("/calendar", calendarHandler.GetCalendar)
	r.POST("/notify", calendarHandler.PostNotify)
	r.GET("/health", calendarHandler.GetHealth)

	err = r.Run(":" + cfg.Port)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
