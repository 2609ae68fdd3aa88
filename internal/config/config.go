// Package config resolves rkmatch settings from flags, environment
// variables (prefix RKMATCH_) and an optional config file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/hupe1980/rkmatch"
)

const (
	ConfigFileKey      = "config"
	AlgorithmKey       = "algorithm"
	ChunkSizeKey       = "chunk-size"
	PrimeKey           = "prime"
	BloomBitsKey       = "bloom-bits"
	TraceKey           = "trace"
	LogLevelKey        = "log-level"
	LogFormatKey       = "log-format"
	MemoryLimitKey     = "memory-limit"
	IOLimitKey         = "io-limit"
	LoadConcurrencyKey = "load-concurrency"
	MetricsFileKey     = "metrics-file"
	S3RegionKey        = "s3.region"
	S3EndpointKey      = "s3.endpoint"
	MinioEndpointKey   = "minio.endpoint"
	MinioAccessKeyKey  = "minio.access-key"
	MinioSecretKeyKey  = "minio.secret-key"
	MinioSecureKey     = "minio.secure"

	EnvPrefix = "RKMATCH"
)

var (
	// ErrInvalidLogLevel is returned for an unknown log level.
	ErrInvalidLogLevel = errors.New("invalid log level")
	// ErrInvalidLogFormat is returned for a log format other than text or json.
	ErrInvalidLogFormat = errors.New("invalid log format")
	// ErrInvalidLimit is returned for a negative resource limit.
	ErrInvalidLimit = errors.New("invalid resource limit")
)

// AddFlags registers every setting on flags. The matching settings keep
// the short options -t, -k and -q.
func AddFlags(flags *pflag.FlagSet) {
	flags.String(ConfigFileKey, "", "Config file (yaml, toml or json)")
	flags.StringP(AlgorithmKey, "t", "0", "Algorithm: 0 naive, 1 rabin-karp, 2 batch")
	flags.IntP(ChunkSizeKey, "k", rkmatch.DefaultChunkSize, "Chunk size in bytes")
	flags.Uint64P(PrimeKey, "q", rkmatch.DefaultPrime, "Rolling hash modulus")
	flags.Uint64(BloomBitsKey, 0, "Bloom filter size in bits (0 derives it from the query)")
	flags.Bool(TraceKey, true, "Print window hashes (-t 1) or the Bloom filter prefix (-t 2)")
	flags.String(LogLevelKey, "warn", "Log level: debug, info, warn, error")
	flags.String(LogFormatKey, "text", "Log format: text or json")
	flags.Int64(MemoryLimitKey, 0, "Maximum bytes held by loaded documents (0 unlimited)")
	flags.Int64(IOLimitKey, 0, "Remote read limit in bytes per second (0 unlimited)")
	flags.Int64(LoadConcurrencyKey, 4, "Documents loaded concurrently")
	flags.String(MetricsFileKey, "", "Write Prometheus metrics to this textfile on exit")
	flags.String(S3RegionKey, "", "AWS region for s3:// documents")
	flags.String(S3EndpointKey, "", "S3-compatible endpoint for s3:// documents")
	flags.String(MinioEndpointKey, "", "MinIO endpoint (host:port) for minio:// documents")
	flags.String(MinioAccessKeyKey, "", "MinIO access key")
	flags.String(MinioSecretKeyKey, "", "MinIO secret key")
	flags.Bool(MinioSecureKey, true, "Use TLS for MinIO")
}

// Config is the resolved configuration.
type Config struct {
	Algorithm       rkmatch.Algorithm
	ChunkSize       int
	Prime           uint64
	BloomBits       uint64
	Trace           bool
	LogLevel        slog.Level
	LogFormat       string
	MemoryLimit     int64
	IOLimit         int64
	LoadConcurrency int64
	MetricsFile     string
	S3              S3Config
	Minio           MinioConfig
}

// S3Config holds s3:// settings.
type S3Config struct {
	Region   string
	Endpoint string
}

// MinioConfig holds minio:// settings.
type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Secure    bool
}

// NewViper returns a viper instance bound to flags and the environment.
func NewViper(flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(flags); err != nil {
		return nil, err
	}

	if path := v.GetString(ConfigFileKey); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}
	return v, nil
}

// Load resolves and validates a Config from v.
func Load(v *viper.Viper) (*Config, error) {
	alg, err := rkmatch.ParseAlgorithm(v.GetString(AlgorithmKey))
	if err != nil {
		return nil, err
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(v.GetString(LogLevelKey))); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLogLevel, v.GetString(LogLevelKey))
	}

	cfg := &Config{
		Algorithm:       alg,
		ChunkSize:       v.GetInt(ChunkSizeKey),
		Prime:           v.GetUint64(PrimeKey),
		BloomBits:       v.GetUint64(BloomBitsKey),
		Trace:           v.GetBool(TraceKey),
		LogLevel:        level,
		LogFormat:       strings.ToLower(v.GetString(LogFormatKey)),
		MemoryLimit:     v.GetInt64(MemoryLimitKey),
		IOLimit:         v.GetInt64(IOLimitKey),
		LoadConcurrency: v.GetInt64(LoadConcurrencyKey),
		MetricsFile:     v.GetString(MetricsFileKey),
		S3: S3Config{
			Region:   v.GetString(S3RegionKey),
			Endpoint: v.GetString(S3EndpointKey),
		},
		Minio: MinioConfig{
			Endpoint:  v.GetString(MinioEndpointKey),
			AccessKey: v.GetString(MinioAccessKeyKey),
			SecretKey: v.GetString(MinioSecretKeyKey),
			Secure:    v.GetBool(MinioSecureKey),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings that can never produce a match.
func (c *Config) Validate() error {
	if !c.Algorithm.Valid() {
		return fmt.Errorf("%w: %d", rkmatch.ErrInvalidAlgorithm, int(c.Algorithm))
	}
	if c.ChunkSize <= 0 {
		return fmt.Errorf("%w: %d", rkmatch.ErrInvalidChunkSize, c.ChunkSize)
	}
	if c.Prime < 2 {
		return fmt.Errorf("%w: %d", rkmatch.ErrInvalidModulus, c.Prime)
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, c.LogFormat)
	}
	if c.MemoryLimit < 0 || c.IOLimit < 0 || c.LoadConcurrency < 0 {
		return ErrInvalidLimit
	}
	return nil
}

// MatcherOptions returns the rkmatch options the config selects.
func (c *Config) MatcherOptions() []rkmatch.Option {
	return []rkmatch.Option{
		rkmatch.WithAlgorithm(c.Algorithm),
		rkmatch.WithChunkSize(c.ChunkSize),
		rkmatch.WithModulus(c.Prime),
		rkmatch.WithBloomBits(c.BloomBits),
	}
}
