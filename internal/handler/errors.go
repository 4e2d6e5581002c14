// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHandlersAreCreated is returned by NewHandlers when no status listener
// address is configured. The watch daemon then runs without an HTTP surface.
var errNoHandlersAreCreated = errors.New("no handlers are created")
