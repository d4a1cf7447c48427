/*
 * Copyright 2025 AlexeyGordiychenko.
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0:8000", cfg.Server.Address())
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Empty(t, cfg.Database.Type)
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfigFile(t, `
server:
  host: 127.0.0.1
  port: 9000
database:
  type: postgres
  host: db.internal
  username: shop
  password: secret
  name: orders
  auto_create: false
  conn_max_lifetime: 60
log:
  level: debug
  format: json
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Address())
	assert.Equal(t, "postgres", cfg.Database.Type)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "orders", cfg.Database.Name)
	require.NotNil(t, cfg.Database.AutoCreate)
	assert.False(t, *cfg.Database.AutoCreate)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: 9000
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host, "unset fields keep their defaults")
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file does not exist")
}

func TestLoadMalformedFile(t *testing.T) {
	path := writeConfigFile(t, "server: [not a mapping")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SERVER_HOST", "10.0.0.1")
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("LOG_LEVEL", "warning")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.1:8080", cfg.Server.Address())
	assert.Equal(t, "warning", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestToConnectionConfig(t *testing.T) {
	t.Run("empty section keeps connection defaults", func(t *testing.T) {
		cfg := (&DatabaseConfig{}).ToConnectionConfig()
		assert.Equal(t, "sqlite", cfg.Type)
		assert.Equal(t, "shopapi", cfg.DBName)
		assert.True(t, cfg.AutoCreate)
		assert.Equal(t, time.Hour, cfg.ConnMaxLifetime)
	})

	t.Run("set fields override", func(t *testing.T) {
		autoCreate := false
		section := &DatabaseConfig{
			Type:              "postgres",
			Host:              "db.internal",
			Port:              5433,
			Username:          "shop",
			Password:          "secret",
			Name:              "orders",
			SSLMode:           "require",
			AutoCreate:        &autoCreate,
			MaxOpenConns:      20,
			ConnMaxLifetime:   90,
			ReconnectInterval: 10,
		}
		cfg := section.ToConnectionConfig()
		assert.Equal(t, "postgres", cfg.Type)
		assert.Equal(t, "db.internal", cfg.Host)
		assert.Equal(t, 5433, cfg.Port)
		assert.Equal(t, "shop", cfg.Username)
		assert.Equal(t, "orders", cfg.DBName)
		assert.Equal(t, "require", cfg.SSLMode)
		assert.False(t, cfg.AutoCreate)
		assert.Equal(t, 20, cfg.MaxOpenConns)
		assert.Equal(t, 90*time.Second, cfg.ConnMaxLifetime)
		assert.Equal(t, 10*time.Second, cfg.ReconnectInterval)
	})
}
