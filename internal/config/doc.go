// Package config loads and validates quill's TOML configuration.
//
// Resolution order: an explicit --config path, the QUILL_CONFIG environment
// variable, then ~/.config/quill/config.toml. A missing file yields defaults;
// a malformed file is an error. Paths support ~ expansion.
package config
