// One-shot analysis runner. Runs a single topic through the full pipeline
// and prints the result as JSON, then tears down the browser pool and the
// event producer before exiting.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"strings"
	"time"

	"social-pulse/aggregator"
	"social-pulse/analyzer"
	"social-pulse/apify"
	"social-pulse/browser"
	"social-pulse/config"
	"social-pulse/db"
	"social-pulse/eventbus"
	"social-pulse/expander"
	"social-pulse/llm"
	"social-pulse/logger"
	"social-pulse/models"
	"social-pulse/reddit"
	"social-pulse/repositories"
	"social-pulse/sources"
	"social-pulse/summarizer"
	"social-pulse/xsearch"
)

func main() {
	topic := flag.String("topic", "", "topic to analyze")
	sourceList := flag.String("sources", "", "comma-separated source kinds (default: config default_sources)")
	maxItems := flag.Int("max", 0, "max posts per source")
	since := flag.String("since", "", "start date (YYYY-MM-DD)")
	until := flag.String("until", "", "end date (YYYY-MM-DD)")
	timeout := flag.Duration("timeout", 3*time.Minute, "overall deadline")
	flag.Parse()

	if strings.TrimSpace(*topic) == "" {
		log.Fatal("usage: analyze -topic <topic> [-sources fixture,reddit] [-max 20]")
	}

	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

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
		bus = kafkaBus
	}

	llmClient, err := llm.NewGemini(ctx)
	if err != nil {
		log.Fatal("failed to initialize LLM client:", err)
	}

	// 일회 실행 모드: 분석이 끝나면 풀을 반드시 닫는다.
	pool := browser.NewPool(cfg.Browser.MaxWorkers)
	defer pool.Close()
	defer bus.Close()

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

	svc := analyzer.New(
		expander.New(llmClient),
		aggregator.New(sources.NewRegistry(adapters...)),
		summarizer.New(llmClient),
		llmClient,
		bus,
	).WithRepositories(analysisRepo, aiLogRepo)

	req := analyzer.Request{
		Topic:   *topic,
		Sources: parseSources(*sourceList, cfg.Analysis.DefaultSources),
		Options: models.FetchOptions{MaxItems: *maxItems},
	}
	if t, err := time.Parse("2006-01-02", *since); err == nil {
		req.Options.Since = t
	}
	if t, err := time.Parse("2006-01-02", *until); err == nil {
		req.Options.Until = t
	}

	result, err := svc.AnalyzeTopic(ctx, req)
	if err != nil {
		log.Fatal("analysis failed:", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		log.Fatal(err)
	}
}

func parseSources(csv string, defaults []string) []models.SourceKind {
	raw := defaults
	if strings.TrimSpace(csv) != "" {
		raw = strings.Split(csv, ",")
	}
	kinds := make([]models.SourceKind, 0, len(raw))
	for _, s := range raw {
		s = strings.TrimSpace(s)
		if s != "" {
			kinds = append(kinds, models.SourceKind(s))
		}
	}
	return kinds
}
