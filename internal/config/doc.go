// Package config handles loading the bestiary configuration file.
//
// # Overview
//
// Settings live in ~/.config/bestiary/config.toml. Every field is
// optional; a missing file yields the defaults, so the binary works
// out of the box against the public catalog endpoint.
//
// # TOML Format
//
//	api_url = "https://pokeapi.co/api/v2"
//	page_size = 20
//	request_timeout_seconds = 10
//	log_path = "~/.local/state/bestiary/bestiary.log"
//
// # Path Expansion
//
// Tilde paths are expanded to the home directory and relative paths
// are made absolute, matching how the rest of the application expects
// to receive file locations.
package config
