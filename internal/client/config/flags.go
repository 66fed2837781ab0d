package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/chatline/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the identity authority
//	-u string   upload endpoint of the image-hosting service
//	-p string   upload preset identifier
//	-n string   upload namespace identifier
//	-s string   session file path
//	-l string   log level
//	-t int      request timeout in seconds (0 = transport default)
//
// The function filters os.Args to the flags it knows about, using
// flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-u", "-p", "-n", "-s", "-l", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.AuthorityBaseURL, "a", cfg.AuthorityBaseURL, "base URL of the identity authority")
	fs.StringVar(&cfg.UploadURL, "u", cfg.UploadURL, "upload endpoint of the image-hosting service")
	fs.StringVar(&cfg.UploadPreset, "p", cfg.UploadPreset, "upload preset identifier")
	fs.StringVar(&cfg.UploadNamespace, "n", cfg.UploadNamespace, "upload namespace identifier")
	fs.StringVar(&cfg.SessionFile, "s", cfg.SessionFile, "session file path")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
}
