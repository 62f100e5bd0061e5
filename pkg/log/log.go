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
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/walteh/elvis/pkg/action"
	"github.com/walteh/elvis/pkg/executor"
)

// 🎨 Display configuration
const (
	actionIndent = 2  // spaces to indent applied actions
	verbWidth    = 7  // width for the verb column
	kindWidth    = 10 // width for the object kind column
)

var _ executor.Reporter = (*Logger)(nil)

// 🎯 Logger writes a console line per applied action and mirrors it to zerolog
type Logger struct {
	zlog    zerolog.Logger
	console io.Writer
	mu      sync.Mutex
	applied int
}

// 🏭 New creates a new logger. zlog receives the structured events.
func New(console io.Writer, zlog zerolog.Logger) *Logger {
	return &Logger{
		zlog:    zlog,
		console: console,
	}
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context, or nil
func FromContext(ctx context.Context) *Logger {
	logger, _ := ctx.Value(contextKey{}).(*Logger)
	return logger
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// 📝 formatAction formats an applied action for display
func (l *Logger) formatAction(a action.Action) string {
	var (
		symbol      rune
		symbolColor color.Attribute
		kind        string
		target      string
	)
	switch a := a.(type) {
	case action.Create:
		symbol, symbolColor, kind, target = '✓', color.FgGreen, a.Kind.String(), a.Path
	case action.Move:
		symbol, symbolColor, kind, target = '→', color.FgBlue, "", a.From+" -> "+a.To
		if a.Overwrite {
			symbol, symbolColor = '⟳', color.FgYellow
		}
	case action.Delete:
		symbol, symbolColor, kind, target = '✗', color.FgRed, a.Kind.String(), a.Path
	case action.Modify:
		symbol, symbolColor, kind, target = '-', color.FgYellow, "", a.Path
	}

	return fmt.Sprintf("%s%s %s %s %s",
		strings.Repeat(" ", actionIndent),
		color.New(symbolColor).Sprint(string(symbol)),
		fmt.Sprintf("%-*s", verbWidth, a.Verb()),
		color.New(color.Faint).Sprint(fmt.Sprintf("%-*s", kindWidth, kind)),
		target)
}

// 📝 Applied logs an action the executor just applied
func (l *Logger) Applied(ctx context.Context, a action.Action) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.applied++
	fmt.Fprintln(l.console, l.formatAction(a))

	ev := l.zlog.Info().Str("verb", a.Verb()).Strs("paths", a.Paths())
	if m, ok := a.(action.Move); ok {
		ev = ev.Bool("overwrite", m.Overwrite)
	}
	ev.Msg("action applied")
}

// AppliedCount returns how many actions were reported
func (l *Logger) AppliedCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.applied
}

// 📝 Success logs a success message
func (l *Logger) Success(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "✅ %s\n", color.New(color.FgGreen).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
	l.zlog.Warn().Msg(msg)
}

// 📝 Error logs an error message
func (l *Logger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "❌ %s\n", color.New(color.FgRed).Sprint(msg))
	l.zlog.Error().Msg(msg)
}

// 📝 Info logs an info message
func (l *Logger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "ℹ️  %s\n", color.New(color.FgCyan).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Successf logs a formatted success message
func (l *Logger) Successf(format string, args ...interface{}) {
	l.Success(fmt.Sprintf(format, args...))
}

// 📝 Warningf logs a formatted warning message
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.Warning(fmt.Sprintf(format, args...))
}
