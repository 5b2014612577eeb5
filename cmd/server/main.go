package main

import (
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"idea-gatekeeper/internal/api"
	"idea-gatekeeper/internal/precheck"
)

func main() {
	precheckCfg := precheck.Config{
		APIKey:  os.Getenv("OPENAI_API_KEY"),
		Model:   os.Getenv("OPENAI_MODEL"),
		BaseURL: os.Getenv("OPENAI_BASE_URL"),
	}
	if temp := os.Getenv("OPENAI_TEMPERATURE"); temp != "" {
		if v, err := strconv.ParseFloat(temp, 64); err == nil {
			precheckCfg.Temperature = v
		}
	}
	if maxTokens := os.Getenv("OPENAI_MAX_TOKENS"); maxTokens != "" {
		if v, err := strconv.Atoi(maxTokens); err == nil {
			precheckCfg.MaxTokens = v
		}
	}

	var threshold int64
	if v := strings.TrimSpace(os.Getenv("CAPITAL_THRESHOLD")); v != "" {
		if val, err := strconv.ParseInt(v, 10, 64); err == nil && val > 0 {
			threshold = val
		}
	}

	var allowedOrigins []string
	if v := strings.TrimSpace(os.Getenv("ALLOWED_ORIGINS")); v != "" {
		for _, origin := range strings.Split(v, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				allowedOrigins = append(allowedOrigins, origin)
			}
		}
	}

	cfg := api.Config{
		RealityMarkersPath:  strings.TrimSpace(os.Getenv("REALITY_MARKERS_PATH")),
		LegalityMarkersPath: strings.TrimSpace(os.Getenv("LEGALITY_MARKERS_PATH")),
		CapitalThreshold:    threshold,
		AllowedOrigins:      allowedOrigins,
		PrecheckConfig:      precheckCfg,
		DisablePrecheck:     strings.EqualFold(strings.TrimSpace(os.Getenv("DISABLE_AI")), "true"),
	}

	server, err := api.NewServer(cfg)
	if err != nil {
		logrus.Fatalf("create server: %v", err)
	}

	router, err := server.Router()
	if err != nil {
		logrus.Fatalf("configure router: %v", err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "2000"
	}

	logrus.Infof("starting idea-gatekeeper backend on :%s", port)
	if err := router.Run(":" + port); err != nil {
		logrus.Fatalf("server exited: %v", err)
	}
}
