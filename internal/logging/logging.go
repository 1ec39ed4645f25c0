// Copyright 2025 go-highway Authors
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

// Package logging holds the structured logger shared by every quadlane package.
//
// Kernels are libraries, so the default logger discards everything. Callers
// opt in with hwy.SetLogger (or Set here, from inside the module).
package logging

import (
	"io"
	"log/slog"
	"os"
	"sync/atomic"
)

var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(Discard())
}

// L returns the active logger. Never nil.
func L() *slog.Logger {
	return current.Load()
}

// Set replaces the active logger. A nil logger restores the discard logger.
func Set(l *slog.Logger) {
	if l == nil {
		l = Discard()
	}
	current.Store(l)
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	}))
}

// NewText returns a human-readable logger writing to stderr at level.
func NewText(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewJSON returns a JSON logger writing to stderr at level.
func NewJSON(level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}
