// Copyright (c) 2015-2018 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package addressbook

import "github.com/decred/slog"

var log = slog.Disabled

// UseLogger sets the package logger. Logging output is disabled by default.
func UseLogger(logger slog.Logger) {
	log = logger
}
