package constants

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	EnvAddr           = "CHORDSHEET_ADDR"
	EnvDynamoEndpoint = "CHORDSHEET_DYNAMO_ENDPOINT"
	EnvDynamoRegion   = "CHORDSHEET_DYNAMO_REGION"
	EnvTable          = "CHORDSHEET_TABLE"
	EnvCorsOrigins    = "CHORDSHEET_CORS_ORIGINS"
	EnvDebug          = "CHORDSHEET_DEBUG"
)

// BatchGetItem accepts at most 100 keys per call
const MaxBatchSize = 100

const DebounceWait = 300 * time.Millisecond

const (
	DefaultOctave   = 4
	DefaultBpm      = 90
	TicksPerQuarter = 480
)

type Config struct {
	Addr           string   `yaml:"addr"`
	DynamoEndpoint string   `yaml:"dynamo_endpoint"`
	DynamoRegion   string   `yaml:"dynamo_region"`
	Table          string   `yaml:"table"`
	CorsOrigins    []string `yaml:"cors_origins"`
	Debug          bool     `yaml:"debug"`
}

func Default() Config {
	return Config{
		Addr:           ":8080",
		DynamoEndpoint: "http://localhost:8000",
		DynamoRegion:   "localhost",
		Table:          "chordsheet-sheets",
		CorsOrigins:    []string{"*"},
	}
}

// Load reads the optional YAML file at path over the defaults, then applies
// environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, errors.Wrap(err, "could not read config")
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, errors.Wrapf(err, "could not parse config %v", path)
		}
	}

	if v := os.Getenv(EnvAddr); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv(EnvDynamoEndpoint); v != "" {
		cfg.DynamoEndpoint = v
	}
	if v := os.Getenv(EnvDynamoRegion); v != "" {
		cfg.DynamoRegion = v
	}
	if v := os.Getenv(EnvTable); v != "" {
		cfg.Table = v
	}
	if v := os.Getenv(EnvCorsOrigins); v != "" {
		cfg.CorsOrigins = splitList(v)
	}
	if v := os.Getenv(EnvDebug); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, errors.Wrapf(err, "invalid %v", EnvDebug)
		}
		cfg.Debug = debug
	}
	return cfg, nil
}

func splitList(s string) []string {
	var res []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			res = append(res, part)
		}
	}
	return res
}
