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

package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusBeforeInit(t *testing.T) {
	old := globalFactory
	globalFactory = nil
	defer func() { globalFactory = old }()

	assert.Nil(t, GetDatabaseManager())
	status := GetHealthStatus(context.Background())
	assert.False(t, status.Healthy)
	assert.False(t, status.Connected)
	assert.Equal(t, &DBStats{}, GetDatabaseStats())
}

func TestConnectionLifecycle(t *testing.T) {
	cfg := &Config{
		ConnectionConfig: ConnectionConfig{
			Type: "sqlite",
			Path: "file::memory:?cache=shared",
		},
		DataMigrateConfig: DataMigrateConfig{
			EnableMigrateOnStartup: true,
			EnableForeignKey:       true,
		},
	}
	db, err := InitDB(cfg)
	require.NoError(t, err)
	require.NotNil(t, db)
	defer func() { _ = CloseDB() }()

	manager := GetDatabaseManager()
	require.NotNil(t, manager)
	require.NoError(t, manager.Ping(context.Background()))

	// The SQLite pool is pinned to one connection for the pragmas.
	stats := GetDatabaseStats()
	assert.Equal(t, 1, stats.MaxOpenConns)

	status := GetHealthStatus(context.Background())
	assert.True(t, status.Healthy)
	assert.True(t, status.Connected)
	assert.Empty(t, status.LastError)
}

type recordingLogger struct {
	messages []string
}

func (l *recordingLogger) SetLevel(LogLevel) {}

func (l *recordingLogger) Debug(msg string, fields ...interface{}) { l.record(msg) }
func (l *recordingLogger) Info(msg string, fields ...interface{})  { l.record(msg) }
func (l *recordingLogger) Warn(msg string, fields ...interface{})  { l.record(msg) }
func (l *recordingLogger) Error(msg string, fields ...interface{}) { l.record(msg) }

func (l *recordingLogger) record(msg string) { l.messages = append(l.messages, msg) }

func TestInitLoggerFirstInstallWins(t *testing.T) {
	globalLoggerMu.Lock()
	old := globalLogger
	globalLogger = nil
	globalLoggerMu.Unlock()
	defer func() {
		globalLoggerMu.Lock()
		globalLogger = old
		globalLoggerMu.Unlock()
	}()

	InitLogger(nil)
	first := &recordingLogger{}
	InitLogger(first)
	assert.Same(t, first, GetLogger())

	// A second install must not replace the configured logger.
	InitLogger(&recordingLogger{})
	assert.Same(t, first, GetLogger())

	GetLogger().Info("ping")
	assert.Equal(t, []string{"ping"}, first.messages)
}
