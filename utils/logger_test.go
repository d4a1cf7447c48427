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

package utils

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  logrus.Level
	}{
		{"trace", logrus.TraceLevel},
		{"debug", logrus.DebugLevel},
		{"info", logrus.InfoLevel},
		{"", logrus.InfoLevel},
		{"warn", logrus.WarnLevel},
		{"warning", logrus.WarnLevel},
		{"error", logrus.ErrorLevel},
		{"fatal", logrus.FatalLevel},
		{"panic", logrus.PanicLevel},
		{"  DEBUG  ", logrus.DebugLevel},
		{"nonsense", logrus.InfoLevel},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLogLevel(tt.input), "input %q", tt.input)
	}
}

func TestNewLoggerRegisters(t *testing.T) {
	l := NewLogger("TEST")
	require.NotNil(t, l)

	assert.True(t, SetLoggerLevel("TEST", "debug"))
	assert.Equal(t, logrus.DebugLevel, l.GetLevel())

	assert.False(t, SetLoggerLevel("UNKNOWN", "debug"))
}

func TestSetAllLoggersLevel(t *testing.T) {
	first := NewLogger("FIRST")
	second := NewLogger("SECOND")

	SetAllLoggersLevel(logrus.WarnLevel)
	assert.Equal(t, logrus.WarnLevel, first.GetLevel())
	assert.Equal(t, logrus.WarnLevel, second.GetLevel())

	SetAllLoggersLevel(logrus.InfoLevel)
}

func TestJSONLogFormatter(t *testing.T) {
	var buf bytes.Buffer
	l := logrus.New()
	l.SetOutput(&buf)
	l.SetFormatter(&JSONLogFormatter{LoggerName: "TEST"})
	l.WithField("order_id", "abc").Info("order created")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "order created", entry["message"])
	assert.Equal(t, "TEST", entry["model"])
	assert.Equal(t, "info", entry["level"])

	fields, ok := entry["fields"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "abc", fields["order_id"])
}

func TestEnvDefaultString(t *testing.T) {
	assert.Equal(t, "fallback", EnvDefaultString("SHOPAPI_TEST_UNSET", "fallback"))

	t.Setenv("SHOPAPI_TEST_STRING", "value")
	assert.Equal(t, "value", EnvDefaultString("SHOPAPI_TEST_STRING", "fallback"))
}

func TestEnvDefaultBool(t *testing.T) {
	assert.True(t, EnvDefaultBool("SHOPAPI_TEST_UNSET", true))
	assert.False(t, EnvDefaultBool("SHOPAPI_TEST_UNSET", false))

	t.Setenv("SHOPAPI_TEST_BOOL", "true")
	assert.True(t, EnvDefaultBool("SHOPAPI_TEST_BOOL", false))

	t.Setenv("SHOPAPI_TEST_BOOL", "broken")
	assert.False(t, EnvDefaultBool("SHOPAPI_TEST_BOOL", true), "unparsable values read as false")
}

func TestEnvDefaultInt(t *testing.T) {
	assert.Equal(t, 42, EnvDefaultInt("SHOPAPI_TEST_UNSET", 42))

	t.Setenv("SHOPAPI_TEST_INT", "7")
	assert.Equal(t, 7, EnvDefaultInt("SHOPAPI_TEST_INT", 42))

	t.Setenv("SHOPAPI_TEST_INT", "seven")
	assert.Equal(t, 42, EnvDefaultInt("SHOPAPI_TEST_INT", 42))
}
