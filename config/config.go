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
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/AlexeyGordiychenko/shopapi/database"
	"github.com/AlexeyGordiychenko/shopapi/utils"
)

// Config is the YAML shape of the service configuration file.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// Address returns the host:port the server binds to.
func (c ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// DatabaseConfig holds the connection settings. Durations are given in
// seconds.
type DatabaseConfig struct {
	Type              string `yaml:"type"`
	Host              string `yaml:"host"`
	Port              int    `yaml:"port"`
	Username          string `yaml:"username"`
	Password          string `yaml:"password"`
	Name              string `yaml:"name"`
	SSLMode           string `yaml:"ssl_mode"`
	AutoCreate        *bool  `yaml:"auto_create"`
	MaxIdleConns      int    `yaml:"max_idle_conns"`
	MaxOpenConns      int    `yaml:"max_open_conns"`
	ConnMaxLifetime   int    `yaml:"conn_max_lifetime"`
	EnableReconnect   *bool  `yaml:"enable_reconnect"`
	ReconnectInterval int    `yaml:"reconnect_interval"`
	EnableQueryLog    bool   `yaml:"enable_query_log"`
	SlowQueryTime     int    `yaml:"slow_query_time"`
}

// LogConfig holds the logging settings.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Server: ServerConfig{Host: "0.0.0.0", Port: 8000},
		Log:    LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads the configuration from a YAML file and applies environment
// overrides. An empty path loads the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return nil, fmt.Errorf("config file does not exist: %s", path)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}
	cfg.overrideFromEnv()
	return cfg, nil
}

// overrideFromEnv applies the server and logging environment variables. The
// database section has its own overrides applied by the connection factory.
func (c *Config) overrideFromEnv() {
	c.Server.Host = utils.EnvDefaultString("SERVER_HOST", c.Server.Host)
	c.Server.Port = utils.EnvDefaultInt("SERVER_PORT", c.Server.Port)
	c.Log.Level = utils.EnvDefaultString("LOG_LEVEL", c.Log.Level)
	c.Log.Format = utils.EnvDefaultString("LOG_FORMAT", c.Log.Format)
}

// ToConnectionConfig converts the database section into the connection
// layer's config. Unset fields keep that layer's defaults.
func (c *DatabaseConfig) ToConnectionConfig() *database.ConnectionConfig {
	cfg := database.DefaultConnectionConfig()
	if c.Type != "" {
		cfg.Type = c.Type
	}
	cfg.Host = c.Host
	if c.Port != 0 {
		cfg.Port = c.Port
	}
	cfg.Username = c.Username
	cfg.Password = c.Password
	if c.Name != "" {
		cfg.DBName = c.Name
	}
	cfg.SSLMode = c.SSLMode
	if c.AutoCreate != nil {
		cfg.AutoCreate = *c.AutoCreate
	}
	if c.MaxIdleConns != 0 {
		cfg.MaxIdleConns = c.MaxIdleConns
	}
	if c.MaxOpenConns != 0 {
		cfg.MaxOpenConns = c.MaxOpenConns
	}
	if c.ConnMaxLifetime != 0 {
		cfg.ConnMaxLifetime = time.Duration(c.ConnMaxLifetime) * time.Second
	}
	if c.EnableReconnect != nil {
		cfg.EnableReconnect = *c.EnableReconnect
	}
	if c.ReconnectInterval != 0 {
		cfg.ReconnectInterval = time.Duration(c.ReconnectInterval) * time.Second
	}
	cfg.EnableQueryLog = c.EnableQueryLog
	if c.SlowQueryTime != 0 {
		cfg.SlowQueryTime = time.Duration(c.SlowQueryTime) * time.Second
	}
	return cfg
}
