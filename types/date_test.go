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

package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-03-01")
	require.NoError(t, err)
	assert.Equal(t, "2026-03-01", d.String())

	_, err = ParseDate("03/01/2026")
	assert.Error(t, err)
}

func TestDateOfTruncatesTime(t *testing.T) {
	d := DateOf(time.Date(2026, time.March, 1, 17, 45, 9, 0, time.UTC))
	assert.Equal(t, "2026-03-01", d.String())
}

func TestDateJSONRoundTrip(t *testing.T) {
	type payload struct {
		OrderDate Date `json:"order_date"`
	}

	data, err := json.Marshal(payload{OrderDate: NewDate(2026, time.January, 15)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"order_date":"2026-01-15"}`, string(data))

	var decoded payload
	require.NoError(t, json.Unmarshal([]byte(`{"order_date":"2026-01-15"}`), &decoded))
	assert.Equal(t, "2026-01-15", decoded.OrderDate.String())

	assert.Error(t, json.Unmarshal([]byte(`{"order_date":"15.01.2026"}`), &decoded))
}

func TestDateValue(t *testing.T) {
	v, err := NewDate(2026, time.January, 15).Value()
	require.NoError(t, err)
	assert.Equal(t, "2026-01-15", v)

	v, err = Date{}.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestDateScan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2026, time.January, 15, 8, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2026-01-15", d.String())

	require.NoError(t, d.Scan("2026-02-20"))
	assert.Equal(t, "2026-02-20", d.String())

	// SQLite returns DATE columns as full timestamps.
	require.NoError(t, d.Scan("2026-02-21 00:00:00+00:00"))
	assert.Equal(t, "2026-02-21", d.String())

	require.NoError(t, d.Scan([]byte("2026-02-22")))
	assert.Equal(t, "2026-02-22", d.String())

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())

	assert.Error(t, d.Scan(42))
}
