package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/chatline/internal/flagx"
	"github.com/dmitrijs2005/chatline/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so the timeout can be written either as a string like "5s"
// or as integer nanoseconds. Parsed values are copied into the runtime
// Config; fields absent from the file keep their earlier values.
type JsonConfig struct {
	AuthorityBaseURL string         `json:"authority_base_url"`
	UploadURL        string         `json:"upload_url"`
	UploadPreset     string         `json:"upload_preset"`
	UploadNamespace  string         `json:"upload_namespace"`
	SessionFile      string         `json:"session_file"`
	LogLevel         string         `json:"log_level"`
	RequestTimeout   timex.Duration `json:"request_timeout"`
}

// parseJson overlays cfg with values from the JSON file named by the -c or
// -config flags. Without either flag nothing is loaded. Read or unmarshal
// errors panic; the caller may recover if desired.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigFileFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.AuthorityBaseURL != "" {
		cfg.AuthorityBaseURL = jc.AuthorityBaseURL
	}
	if jc.UploadURL != "" {
		cfg.UploadURL = jc.UploadURL
	}
	if jc.UploadPreset != "" {
		cfg.UploadPreset = jc.UploadPreset
	}
	if jc.UploadNamespace != "" {
		cfg.UploadNamespace = jc.UploadNamespace
	}
	if jc.SessionFile != "" {
		cfg.SessionFile = jc.SessionFile
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
}
