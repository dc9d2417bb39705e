package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

type AppConfig struct {
	Logging  LoggingConfig  `yaml:"logging"`
	Server   ServerConfig   `yaml:"server"`
	LLM      LLMConfig      `yaml:"llm"`
	Analysis AnalysisConfig `yaml:"analysis"`
	Apify    ApifyConfig    `yaml:"apify"`
	Browser  BrowserConfig  `yaml:"browser"`
	Events   EventsConfig   `yaml:"events"`
	Mongo    MongoConfig    `yaml:"mongo"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

// LLMConfig 는 키워드 확장/요약에 사용할 LLM 설정이다.
// API 키는 config.yaml 이 아니라 환경변수(GEMINI_API_KEY)로만 주입한다.
type LLMConfig struct {
	Provider  string `yaml:"provider"`
	ModelName string `yaml:"model_name"`
}

// AnalysisConfig 는 분석 파이프라인의 기본 동작을 정의한다.
type AnalysisConfig struct {
	// DefaultSources 는 요청에 소스 지정이 없을 때 사용할 소스 목록이다.
	DefaultSources []string `yaml:"default_sources"`

	// TwitterSource 는 legacy platforms.twitter 플래그가 켜졌을 때
	// 실제로 사용할 트위터 계열 소스(x_api | apify | browser)이다.
	TwitterSource string `yaml:"twitter_source"`

	// MaxItems 는 요청에 maxItems 가 없을 때의 기본 수집 개수이다.
	MaxItems int `yaml:"max_items"`

	// SummaryExcerpt 는 요약 프롬프트에 포함할 최대 게시물 수이다.
	// 0 이하면 기본값 10을 사용한다.
	SummaryExcerpt int `yaml:"summary_excerpt"`
}

type ApifyConfig struct {
	ActorID        string `yaml:"actor_id"`
	PollIntervalMs int    `yaml:"poll_interval_ms"`
}

type BrowserConfig struct {
	// MaxWorkers 는 동시에 띄울 헤드리스 브라우저 작업 수이다. 기본 2.
	MaxWorkers int `yaml:"max_workers"`
}

type EventsConfig struct {
	Enabled bool `yaml:"enabled"`
}

type MongoConfig struct {
	Enabled bool   `yaml:"enabled"`
	DBName  string `yaml:"db_name"`
}

var config *AppConfig

func InitApp() {
	// load environment variables
	godotenv.Load(filepath.Join(GetBasePath(), ENV_FILE))

	// load configuration file
	data, err := os.ReadFile(filepath.Join(GetBasePath(), CONFIG_FILE))
	if err != nil {
		panic(err)
	}

	var c AppConfig
	err = yaml.Unmarshal(data, &c)
	if err != nil {
		panic(err)
	}
	config = &c
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
