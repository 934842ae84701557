// Copyright (c) 2015-2018 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txstate

import "github.com/decred/slog"

// log is disabled by default until UseLogger is called.
var log = slog.Disabled

// UseLogger sets the subsystem logs to use the provided loggers.
func UseLogger(logger slog.Logger) {
	log = logger
}

// DisableLog disables all library log output.
func DisableLog() {
	log = slog.Disabled
}
