package config

import "github.com/rdgen-io/rdgen/pkg/hasher"

// Centralized default values for configuration

const (
	DefaultHash       = hasher.DefaultName
	DefaultBufferSize = 64 << 10 // copy buffer between generator and sink
	DefaultLogLevel   = "info"
)
