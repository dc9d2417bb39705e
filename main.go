package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/rs/cors"

	"social-pulse/aggregator"
	"social-pulse/analyzer"
	"social-pulse/api/router"
	"social-pulse/apify"
	"social-pulse/browser"
	"social-pulse/config"
	"social-pulse/db"
	_ "social-pulse/docs" // swag will generate this package
	"social-pulse/eventbus"
	"social-pulse/expander"
	"social-pulse/llm"
	"social-pulse/logger"
	"social-pulse/reddit"
	"social-pulse/repositories"
	"social-pulse/sources"
	"social-pulse/summarizer"
	"social-pulse/xsearch"
)

// @title           Social Pulse API
// @version         1.0
// @description     Topic analysis over social media posts
// @BasePath        /api
func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)

	ctx := context.Background()

	var analysisRepo *repositories.AnalysisRepository
	var aiLogRepo *repositories.AILogRepository
	if cfg.Mongo.Enabled {
		if err := db.Init(ctx); err != nil {
			log.Fatal("failed to initialize MongoDB:", err)
		}
		analysisRepo = repositories.NewAnalysisRepository(db.Database())
		aiLogRepo = repositories.NewAILogRepository(db.Database())
	}

	var bus eventbus.EventBus = eventbus.NewNoop()
	if cfg.Events.Enabled {
		kafkaBus, err := eventbus.NewKafkaEventBus(eventbus.GetBrokers())
		if err != nil {
			log.Fatal("failed to initialize Kafka producer:", err)
		}
		defer kafkaBus.Close()
		bus = kafkaBus
	}

	llmClient, err := llm.NewGemini(ctx)
	if err != nil {
		log.Fatal("failed to initialize LLM client:", err)
	}

	// 서버 모드에서는 브라우저 풀을 프로세스 수명 동안 유지한다.
	pool := browser.NewPool(cfg.Browser.MaxWorkers)
	registry := buildRegistry(pool)

	svc := analyzer.New(
		expander.New(llmClient),
		aggregator.New(registry),
		summarizer.New(llmClient),
		llmClient,
		bus,
	).WithRepositories(analysisRepo, aiLogRepo)

	r := router.New(svc, analysisRepo)
	handler := cors.New(cors.Options{
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "X-Request-Id"},
	}).Handler(r)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	logger.Log.Infof("listening on %s", addr)
	if err := http.ListenAndServe(addr, handler); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}

// buildRegistry 는 사용 가능한 어댑터만 등록한다. 자격증명이 없는 어댑터는
// 경고 로그만 남기고 건너뛴다. fixture 와 reddit, browser 는 항상 등록된다.
func buildRegistry(pool *browser.Pool) *sources.Registry {
	adapters := []sources.Source{
		sources.NewFixture(),
		reddit.New(),
		browser.NewScraper(pool),
	}

	if client, err := apify.New(); err != nil {
		logger.Log.Warnf("apify source disabled: %v", err)
	} else {
		adapters = append(adapters, client)
	}

	if client, err := xsearch.New(); err != nil {
		logger.Log.Warnf("x api source disabled: %v", err)
	} else {
		adapters = append(adapters, client)
	}

	return sources.NewRegistry(adapters...)
}
