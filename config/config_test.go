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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8000", cfg.Server.Addr())
	assert.Equal(t, "sqlite", cfg.Database.Type)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  host: 127.0.0.1
  port: 9000
database:
  type: postgres
  host: db.internal
  port: 5432
  username: storefront
  dbname: storefront
  sslmode: require
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr())
	assert.Equal(t, "postgres", cfg.Database.Type)
	assert.Equal(t, "debug", cfg.Logging.LogLevel())
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [broken"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestConfigLoaderMapsDatabaseSettings(t *testing.T) {
	cfg := Default()
	cfg.Database.Type = "mysql"
	cfg.Database.Host = "db.internal"
	cfg.Database.Port = 3306
	cfg.Database.Username = "storefront"
	cfg.Database.Password = "secret"
	cfg.Database.DBName = "shop"
	no := false
	cfg.Database.EnableForeignKey = &no

	dbCfg := cfg.ConfigLoader()
	assert.Equal(t, "mysql", dbCfg.ConnectionConfig.Type)
	assert.Equal(t, "db.internal", dbCfg.ConnectionConfig.Host)
	assert.Equal(t, "shop", dbCfg.ConnectionConfig.DBName)
	assert.True(t, dbCfg.DataMigrateConfig.EnableMigrateOnStartup)
	assert.False(t, dbCfg.DataMigrateConfig.EnableForeignKey)
}

func TestConfigLoaderDefaultsToSQLite(t *testing.T) {
	dbCfg := Default().ConfigLoader()
	assert.Equal(t, "sqlite", dbCfg.ConnectionConfig.Type)
	assert.Equal(t, "storefront", dbCfg.ConnectionConfig.DBName)
	assert.True(t, dbCfg.DataMigrateConfig.EnableForeignKey)
}
