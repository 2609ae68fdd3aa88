package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/rkmatch"
)

func load(t *testing.T, args ...string) (*Config, error) {
	t.Helper()
	flags := pflag.NewFlagSet("rkmatch", pflag.ContinueOnError)
	AddFlags(flags)
	require.NoError(t, flags.Parse(args))

	v, err := NewViper(flags)
	if err != nil {
		return nil, err
	}
	return Load(v)
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(t)
	require.NoError(t, err)

	assert.Equal(t, rkmatch.Naive, cfg.Algorithm)
	assert.Equal(t, rkmatch.DefaultChunkSize, cfg.ChunkSize)
	assert.Equal(t, rkmatch.DefaultPrime, cfg.Prime)
	assert.True(t, cfg.Trace)
	assert.Equal(t, slog.LevelWarn, cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, int64(4), cfg.LoadConcurrency)
	assert.True(t, cfg.Minio.Secure)
}

func TestLoad_ShortFlags(t *testing.T) {
	cfg, err := load(t, "-t", "2", "-k", "20", "-q", "1000003")
	require.NoError(t, err)

	assert.Equal(t, rkmatch.Batch, cfg.Algorithm)
	assert.Equal(t, 20, cfg.ChunkSize)
	assert.Equal(t, uint64(1000003), cfg.Prime)
	assert.Len(t, cfg.MatcherOptions(), 4)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("RKMATCH_CHUNK_SIZE", "7")
	t.Setenv("RKMATCH_ALGORITHM", "rabin-karp")
	t.Setenv("RKMATCH_MINIO_ENDPOINT", "localhost:9000")

	cfg, err := load(t)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.ChunkSize)
	assert.Equal(t, rkmatch.RabinKarp, cfg.Algorithm)
	assert.Equal(t, "localhost:9000", cfg.Minio.Endpoint)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rkmatch.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
algorithm: batch
chunk-size: 50
log-format: json
s3:
  region: eu-west-1
`), 0o600))

	cfg, err := load(t, "--config", path)
	require.NoError(t, err)
	assert.Equal(t, rkmatch.Batch, cfg.Algorithm)
	assert.Equal(t, 50, cfg.ChunkSize)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "eu-west-1", cfg.S3.Region)

	_, err = load(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{"algorithm", []string{"-t", "3"}, rkmatch.ErrInvalidAlgorithm},
		{"zero chunk", []string{"-k", "0"}, rkmatch.ErrInvalidChunkSize},
		{"negative chunk", []string{"-k", "-5"}, rkmatch.ErrInvalidChunkSize},
		{"prime", []string{"-q", "1"}, rkmatch.ErrInvalidModulus},
		{"log level", []string{"--log-level", "loud"}, ErrInvalidLogLevel},
		{"log format", []string{"--log-format", "xml"}, ErrInvalidLogFormat},
		{"memory limit", []string{"--memory-limit", "-1"}, ErrInvalidLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := load(t, tt.args...)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}
