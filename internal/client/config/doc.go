// Package config loads runtime configuration for the scraperadmin CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see SetDefaults).
//  2. Optional config file (yaml, json or toml) given by --config, otherwise
//     scraperadmin.* searched in the working directory and $HOME/.config/scraperadmin.
//  3. Environment variables prefixed with SCRAPERADMIN_, after a .env file in
//     the working directory has been loaded into the environment.
//  4. Command-line flags bound by the CLI, which override everything else.
//
// Keys
//
//	server        API server root, "/api" is appended for requests
//	db            path to the local session database
//	timeout       per-request timeout, e.g. "10s"
//	log_level     debug, info, warn or error
//	download_dir  directory for downloaded files
//	stale_time    how long cached lists stay fresh, 0 means until invalidated
package config
