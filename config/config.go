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
	Logging     LoggingConfig    `yaml:"logging"`
	MongoURI    string           `yaml:"mongo_uri"`
	MongoDBName string           `yaml:"mongo_db_name"`
	GeminiModel string           `yaml:"gemini_model"`
	Listing     ListingConfig    `yaml:"listing"`
	FormRelay   FormRelayConfig  `yaml:"form_relay"`
	FeedImport  FeedImportConfig `yaml:"feed_import"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// ListingConfig controls the dashboard/public list projections.
type ListingConfig struct {
	// PageSize is the fixed dashboard page size. 0 or less falls back to 6.
	PageSize int `yaml:"page_size"`
}

// FormRelayConfig points at the external form-relay service the contact
// endpoint forwards submissions to. The access key comes from the
// FORM_RELAY_ACCESS_KEY env var; only the endpoint lives in config.yaml.
type FormRelayConfig struct {
	Endpoint string `yaml:"endpoint"`
}

// FeedImportConfig controls the RSS draft import pipeline.
type FeedImportConfig struct {
	// MaxItems caps how many feed items a single import pulls.
	// 0 or less falls back to 10.
	MaxItems int `yaml:"max_items"`

	// FetchContent renders each imported link in a headless browser to
	// prefill the draft body.
	FetchContent bool `yaml:"fetch_content"`
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

// PageSize returns the effective dashboard page size.
func (c AppConfig) PageSize() int {
	if c.Listing.PageSize <= 0 {
		return 6
	}
	return c.Listing.PageSize
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
