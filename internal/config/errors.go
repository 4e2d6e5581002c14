package config

import "errors"

// Returned by GetClientConfig, wrapped with the offending detail.
var (
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	ErrInvalidWorkerConfigs  = errors.New("invalid worker configuration")
)
