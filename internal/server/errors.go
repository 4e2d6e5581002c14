// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoListenAddress is returned by NewServer when the status listener is
// disabled by configuration.
var errNoListenAddress = errors.New("no status listener address configured")
