// Package config resolves a fakedatagen run's effective configuration: the
// built-in defaults, overridden by an optional TOML file (spec.md §6's
// INI-like [Output]/[Model]/[Generation] sections map directly onto TOML
// sections of the same name and keys), overridden in turn by explicit CLI
// flags.
package config
