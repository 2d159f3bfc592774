// Package config handles loading and parsing the hivewatch configuration file.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/hivewatch/config.toml (default)
//  3. If the config file doesn't exist, fall back to Default()
//  4. If the file exists but fields are missing/empty, use defaults per field
//
// # Default Values
//
//   - tick_rate: 250ms
//   - enhanced_graphics: true
//   - show_chart: true
//   - refresh_interval: 60s
//   - min_fetch_interval: 5s
//   - source_url: https://www.hiveworkshop.com/find-new/posts
//   - base_url: https://www.hiveworkshop.com
//   - filters: Maps, Models, Site Discussion, Multiplayer LFG, Skins, Something Else
//   - max_records: 500
//   - log_path: ~/.local/state/hivewatch/hivewatch.log
//
// # TOML Format
//
//	tick_rate = "250ms"
//	enhanced_graphics = true
//	refresh_interval = "60s"
//	filters = ["Off-topic", "Maps"]
//
// Durations use Go duration syntax. A non-positive duration falls back to its
// default; an unparsable one is an error. An explicit empty filters list turns
// filtering off, while omitting the key keeps the default set.
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g., cannot determine home directory)
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - TOML syntax errors and invalid durations
package config
