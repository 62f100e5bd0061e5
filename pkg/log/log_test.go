// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package log

import (
	"bytes"
	"context"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/elvis/pkg/action"
)

func TestLogger(t *testing.T) {
	// Disable color for testing
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name     string
		op       func(t *testing.T, logger *Logger)
		wantLogs []string
	}{
		{
			name: "applied_create",
			op: func(t *testing.T, logger *Logger) {
				logger.Applied(context.Background(), action.Create{Path: "/a", Kind: action.File})
			},
			wantLogs: []string{
				"  ✓ create  file       /a",
			},
		},
		{
			name: "applied_move",
			op: func(t *testing.T, logger *Logger) {
				logger.Applied(context.Background(), action.Move{From: "/a", To: "/b"})
				logger.Applied(context.Background(), action.Move{From: "/c", To: "/d", Overwrite: true})
			},
			wantLogs: []string{
				"  → move    " + strings.Repeat(" ", 11) + "/a -> /b",
				"  ⟳ move    " + strings.Repeat(" ", 11) + "/c -> /d",
			},
		},
		{
			name: "applied_delete",
			op: func(t *testing.T, logger *Logger) {
				logger.Applied(context.Background(), action.Delete{Path: "/dir", Kind: action.Directory})
			},
			wantLogs: []string{
				"  ✗ delete  directory  /dir",
			},
		},
		{
			name: "log_messages",
			op: func(t *testing.T, logger *Logger) {
				logger.Info("info message")
				logger.Warning("warning message")
				logger.Error("error message")
				logger.Success("success message")
			},
			wantLogs: []string{
				"ℹ️  info message",
				"⚠️  warning message",
				"❌ error message",
				"✅ success message",
			},
		},
		{
			name: "log_formatted_messages",
			op: func(t *testing.T, logger *Logger) {
				logger.Successf("applied %d actions", 3)
				logger.Warningf("skipped %s", "x")
			},
			wantLogs: []string{
				"✅ applied 3 actions",
				"⚠️  skipped x",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := New(&buf, zerolog.New(io.Discard))

			tt.op(t, logger)

			logs := strings.Split(strings.TrimSpace(buf.String()), "\n")
			require.Len(t, logs, len(tt.wantLogs), "number of log lines should match")
			for i, want := range tt.wantLogs {
				assert.Equal(t, strings.TrimSpace(want), strings.TrimSpace(logs[i]), "log line should match")
			}
		})
	}
}

func TestLoggerStructuredEvents(t *testing.T) {
	var console, events bytes.Buffer
	logger := New(&console, zerolog.New(&events))

	logger.Applied(context.Background(), action.Move{From: "/a", To: "/b", Overwrite: true})

	out := events.String()
	assert.Contains(t, out, `"verb":"move"`)
	assert.Contains(t, out, `"paths":["/a","/b"]`)
	assert.Contains(t, out, `"overwrite":true`)
	assert.Contains(t, out, `"message":"action applied"`)
}

func TestLoggerConcurrency(t *testing.T) {
	logger := New(io.Discard, zerolog.New(io.Discard))
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			logger.Applied(ctx, action.Create{Path: "/a", Kind: action.File})
		}()
	}
	wg.Wait()

	assert.Equal(t, 10, logger.AppliedCount(), "every action should be counted")
}

func TestContext(t *testing.T) {
	ctx := context.Background()
	assert.Nil(t, FromContext(ctx), "no logger by default")

	logger := New(io.Discard, zerolog.Nop())
	assert.Same(t, logger, FromContext(NewContext(ctx, logger)), "logger should round trip")
}
