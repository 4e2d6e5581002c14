// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the client application runtime.
//
// It wires the session store, the first-login gate, route resolution and the
// legacy institution selection into the commands exposed by cmd/client, and
// runs the watch daemon (status listener plus background reconciliation).
package client
