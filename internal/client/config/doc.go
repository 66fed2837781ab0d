// Package config loads runtime configuration for the chatline client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via flags: -c or -config.
//  3. Environment variables (CHATLINE_*), with an optional .env file.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string   base URL of the identity authority
//	-u string   upload endpoint of the image-hosting service
//	-p string   upload preset identifier
//	-n string   upload namespace identifier
//	-s string   session file path
//	-l string   log level (debug | info | warning | error)
//	-t int      request timeout in seconds (0 = transport default)
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so it can be written
// either as a string like "5s" or as integer nanoseconds:
//
//	{
//	  "authority_base_url": "http://127.0.0.1:5000",
//	  "upload_url": "https://api.cloudinary.com/v1_1/chatline/image/upload",
//	  "upload_preset": "chatline",
//	  "upload_namespace": "chatline",
//	  "session_file": "session.json",
//	  "log_level": "info",
//	  "request_timeout": "5s"
//	}
//
// The assembled configuration is validated (URL shape, known log level)
// before LoadConfig returns it.
package config
