// Package config loads runtime configuration for the showcase CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON or YAML file selected via -c or -config.
//  3. SHOWCASE_* environment variables (a .env file is loaded by main).
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string   API base URL (default http://localhost:3000)
//	-g string   address:port of the gRPC health endpoint
//	-i int      online status check interval (seconds)
//	-d string   session database file
//	-l string   log level
//
// # File schema
//
//	api_base_url: http://localhost:3000
//	health_addr: 127.0.0.1:50051
//	online_check_interval: 3s
//	session_db_path: /home/me/.config/showcase/session.db
//	page_size: 12
//	admin_page_size: 100
//	log_level: warn
package config
