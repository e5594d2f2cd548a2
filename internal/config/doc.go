// Package config loads and validates the rogger configuration.
//
// The configuration is a TOML file, by default at ~/.rogger/config.toml,
// describing one [[logs]] entry per remote log to tail:
//
//	tail_lines = 100          # optional, lines seeded by the remote tail
//	read_timeout_secs = 30    # optional, idle read deadline per stream
//
//	[[logs]]
//	name = "api"
//	host = "10.0.0.5"
//	port = 22                 # optional, defaults to 22
//	log_path = "/var/log/api.log"
//	username = "deploy"
//	password = "..."          # or ssh_key = "~/.ssh/id_ed25519"
//	max_history = 10000       # optional, per-source history bound
//
// Exactly one of password/ssh_key must be usable at runtime; a source
// with neither is rejected by the session layer before any network
// activity, not here, so that the rest of the dashboard still comes up.
//
// Paths support ~ expansion. Load fails on a missing or malformed file
// and on entries lacking name, host, or log_path; these are startup
// errors surfaced before the TUI is entered.
package config
