/*
 * Copyright 2025 tomoncle.
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

// Package config loads application settings from a YAML file and the
// environment. An absent file is not an error; defaults apply.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"storefront/database"
	"storefront/utils"
)

// Config is the application-level configuration file layout.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	AllowedOrigins  []string      `yaml:"allowed_origins"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// DatabaseConfig describes the storage backend.
type DatabaseConfig struct {
	Type             string `yaml:"type"`
	Path             string `yaml:"path"`
	Host             string `yaml:"host"`
	Port             int    `yaml:"port"`
	Username         string `yaml:"username"`
	Password         string `yaml:"password"`
	DBName           string `yaml:"dbname"`
	SSLMode          string `yaml:"sslmode"`
	EnableQueryLog   bool   `yaml:"enable_query_log"`
	EnableForeignKey *bool  `yaml:"enable_foreign_key"`
	MigrateOnStartup *bool  `yaml:"migrate_on_startup"`
}

// LoggingConfig controls log verbosity.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns the configuration used when no file is present:
// a SQLite store next to the binary, serving on :8000 with open CORS.
func Default() *Config {
	yes := true
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8000,
			AllowedOrigins:  []string{"*"},
			ShutdownTimeout: 10 * time.Second,
		},
		Database: DatabaseConfig{
			Type:             "sqlite",
			DBName:           "storefront",
			EnableForeignKey: &yes,
			MigrateOnStartup: &yes,
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads the YAML file at path over the defaults. An empty path or
// a missing file yields the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Addr returns the listen address for the HTTP server.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// LogLevel parses the configured level, falling back to info.
func (c *LoggingConfig) LogLevel() string {
	if c.Level == "" {
		return "info"
	}
	return c.Level
}

// ConfigLoader maps the application config onto the storage layer's
// configuration, so *Config satisfies database.AbstractDatabaseConfigProvider.
func (c *Config) ConfigLoader() *database.Config {
	conn := database.DefaultConnectionConfig()
	if c.Database.Type != "" {
		conn.Type = c.Database.Type
	}
	if c.Database.Path != "" {
		conn.Path = c.Database.Path
	}
	if c.Database.Host != "" {
		conn.Host = c.Database.Host
	}
	if c.Database.Port != 0 {
		conn.Port = c.Database.Port
	}
	if c.Database.Username != "" {
		conn.Username = c.Database.Username
	}
	if c.Database.Password != "" {
		conn.Password = c.Database.Password
	}
	if c.Database.DBName != "" {
		conn.DBName = c.Database.DBName
	}
	if c.Database.SSLMode != "" {
		conn.SSLMode = c.Database.SSLMode
	}
	conn.EnableQueryLog = c.Database.EnableQueryLog

	migrate := database.DataMigrateConfig{
		EnableMigrateOnStartup: true,
		EnableForeignKey:       true,
	}
	if c.Database.MigrateOnStartup != nil {
		migrate.EnableMigrateOnStartup = *c.Database.MigrateOnStartup
	}
	if c.Database.EnableForeignKey != nil {
		migrate.EnableForeignKey = *c.Database.EnableForeignKey
	}

	return &database.Config{
		ConnectionConfig:  *conn,
		DataMigrateConfig: migrate,
	}
}

// ApplyLogging configures the log registry from the loaded settings.
func (c *Config) ApplyLogging() {
	utils.SetAllLoggersLevel(c.Logging.LogLevel())
}
