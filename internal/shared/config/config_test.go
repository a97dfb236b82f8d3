package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ViperConfigSuite struct {
	suite.Suite

	dir string
}

func (s *ViperConfigSuite) SetupTest() {
	s.dir = s.T().TempDir()
}

func (s *ViperConfigSuite) write(name, content string) string {
	path := filepath.Join(s.dir, name)
	require.NoError(s.T(), os.WriteFile(path, []byte(content), 0o600))
	return path
}

func (s *ViperConfigSuite) TestInit_TableDriven() {
	tests := []struct {
		name         string
		yaml         string
		env          string
		expectSource string
		expectErr    bool
	}{
		{name: "yaml preferred", yaml: "server:\n  port: 9090\n", env: "SERVER_PORT=7070\n", expectSource: "yaml"},
		{name: "env fallback", env: "SERVER_PORT=7070\n", expectSource: "env"},
		{name: "nothing found", expectErr: true},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.SetupTest()
			opts := Options{YAMLPath: filepath.Join(s.dir, "missing.yaml"), EnvPath: filepath.Join(s.dir, "missing.env")}
			if tc.yaml != "" {
				opts.YAMLPath = s.write("config.yaml", tc.yaml)
			}
			if tc.env != "" {
				opts.EnvPath = s.write(".env", tc.env)
			}

			cfg, err := Init(opts)
			if tc.expectErr {
				assert.ErrorContains(s.T(), err, "no config file found")
				return
			}
			require.NoError(s.T(), err)
			assert.Equal(s.T(), tc.expectSource, cfg.Source())
		})
	}
}

func (s *ViperConfigSuite) TestDefaultsAndChainMap() {
	path := s.write("config.yaml", `
settlement:
  batch_size: 50
chains:
  eth-sepolia:
    family: evm
    confirmations: 12
    block_time: 12s
`)

	cfg, err := Init(Options{YAMLPath: path})
	require.NoError(s.T(), err)

	assert.Equal(s.T(), 50, cfg.GetInt("settlement.batch_size"))
	assert.Equal(s.T(), 5, cfg.GetInt("settlement.pool_size"))
	assert.Equal(s.T(), 30*time.Second, cfg.GetDuration("settlement.retry_backoff"))
	assert.Equal(s.T(), 12*time.Second, cfg.GetDuration("chains.eth-sepolia.block_time"))
	assert.Contains(s.T(), cfg.GetStringMap("chains"), "eth-sepolia")
}

func (s *ViperConfigSuite) TestEnvironmentOverridesFile() {
	path := s.write("config.yaml", "database:\n  host: file-host\n")
	s.T().Setenv("DATABASE_HOST", "env-host")

	cfg, err := Init(Options{YAMLPath: path})
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "env-host", cfg.GetString("database.host"))
}

func (s *ViperConfigSuite) TestGetSecretExpandsEnvironment() {
	path := s.write("config.yaml", "chains:\n  tron-nile:\n    hot_wallet_key: \"${TEST_TRON_HOT_KEY}\"\n    api_key: plain\n")
	s.T().Setenv("TEST_TRON_HOT_KEY", "deadbeef")

	cfg, err := Init(Options{YAMLPath: path})
	require.NoError(s.T(), err)

	assert.Equal(s.T(), "deadbeef", cfg.GetSecret("chains.tron-nile.hot_wallet_key"))
	assert.Equal(s.T(), "plain", cfg.GetSecret("chains.tron-nile.api_key"))
	assert.Empty(s.T(), cfg.GetSecret("chains.tron-nile.missing"))
}

func (s *ViperConfigSuite) TestWatchChangesIgnoredForEnvSource() {
	path := s.write(".env", "LOGGING_LEVEL=debug\n")

	cfg, err := Init(Options{EnvPath: path})
	require.NoError(s.T(), err)

	cfg.WatchChanges()
	cfg.StopWatching()
	assert.Equal(s.T(), "env", cfg.Source())
}

func TestViperConfigSuite(t *testing.T) {
	suite.Run(t, new(ViperConfigSuite))
}
