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
	"database/sql"
	"errors"
	"time"

	"github.com/fatih/color"
	"github.com/uptrace/bun"
)

var bunSqlSilentMode bool

// EnableBunSqlSilent suppresses query hook output, used while running
// startup migrations.
func EnableBunSqlSilent(b bool) {
	bunSqlSilentMode = b
}

// slowQueryHook warns about statements exceeding the configured threshold.
type slowQueryHook struct {
	slowTime time.Duration
	logger   Logger
}

func (h *slowQueryHook) BeforeQuery(ctx context.Context, event *bun.QueryEvent) context.Context {
	return ctx
}

func (h *slowQueryHook) AfterQuery(ctx context.Context, event *bun.QueryEvent) {
	if bunSqlSilentMode || event.Err != nil || h.logger == nil {
		return
	}
	duration := time.Since(event.StartTime)
	if duration > h.slowTime {
		h.logger.Warn("Database slow query detected",
			"duration", duration,
			"slow_threshold", h.slowTime,
			"query", event.Query,
		)
	}
}

// failedQueryHook logs statements that errored, excluding the expected
// no-rows and finished-transaction results.
type failedQueryHook struct {
	logger Logger
}

func (h *failedQueryHook) BeforeQuery(ctx context.Context, event *bun.QueryEvent) context.Context {
	return ctx
}

func (h *failedQueryHook) AfterQuery(ctx context.Context, event *bun.QueryEvent) {
	if bunSqlSilentMode || h.logger == nil {
		return
	}
	switch {
	case event.Err == nil,
		errors.Is(event.Err, sql.ErrNoRows),
		errors.Is(event.Err, sql.ErrTxDone):
		return
	}
	h.logger.Debug("Database query failed",
		"error", color.New(color.BgRed).Sprintf(" %s ", event.Err.Error()),
		"query", event.Query,
	)
}
