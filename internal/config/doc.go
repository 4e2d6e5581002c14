// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config loads the client configuration.
//
// Values come from environment variables (caarlos0/env), command-line flags
// bound on the cobra command tree, and an optional JSON or YAML file. The
// sources are merged with mergo: a field set by an earlier source is never
// overwritten by a later one, and built-in defaults fill whatever is left.
// [GetClientConfig] projects the merged [StructuredConfig] into the
// [ClientConfig] view used by the runtime and validates it.
package config
