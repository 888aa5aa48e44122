// Package config provides environment-based engine tuning.
//
// Loads classifier thresholds, the trending window, decay shape, and
// sentiment weights from environment variables with sensible defaults, and
// validates the combination before handing it to the engine constructors.
package config
