// Package config assembles engine-core configuration from defaults, a TOML
// file, and TEMPEST_* environment variables. Precedence is defaults, then
// file, then environment; each layer is a separate call so embedders pick
// the layers they want.
package config
