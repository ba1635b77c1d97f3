package cfg

import (
	"fmt"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	// Equivalent of cmp.Or(Version, "unknown"); cmp.Or needs Go 1.22+.
	if Version == "" {
		return "unknown"
	}
	return Version
}

type rawCfg struct {
	// Release metadata
	ReleaseVersion string `long:"version" env:"VERSION" description:"Version label of the release, e.g. 1.0.0 (required)" required:"true"`
	BuildNumber    string `long:"build-number" env:"BUILD_NUMBER" description:"Build number of the release (required)" required:"true"`
	DownloadURL    string `long:"dmg-url" env:"DMG_URL" description:"Download URL for the release artifact (required)" required:"true"`
	ReleaseNotes   string `long:"release-notes" env:"RELEASE_NOTES" description:"Release notes in markdown (optional)"`
	ReleaseURL     string `long:"release-url" env:"RELEASE_URL" description:"Full release page URL (optional)"`

	// File paths
	AppcastPath   string `long:"appcast" env:"APPCAST_PATH" default:"appcast.xml" description:"Existing appcast file"`
	SignaturePath string `long:"signature" env:"SIGNATURE_PATH" default:"sign_update.txt" description:"Output of the sign_update tool"`
	OutputPath    string `long:"output" env:"OUTPUT_PATH" default:"appcast_new.xml" description:"Where to write the updated appcast"`
	ProfilePath   string `long:"profile" env:"PROFILE_PATH" default:"appcast.yml" description:"Appcast profile file"`

	// Preview server
	Serve bool   `long:"serve" env:"SERVE" description:"Serve the generated appcast over HTTP after writing it"`
	Port  string `long:"port" env:"PORT" default:"8080" description:"Preview server port"`

	// Application metadata
	Timezone string `long:"timezone" env:"TZ" default:"UTC" description:"Timezone for publication timestamps (e.g., UTC, America/New_York)"`
	Debug    bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

var globalCfg *Cfg

func Load() (*Cfg, error) {
	// A .env file in the working directory seeds the environment; real
	// environment variables take precedence.
	godotenv.Load()

	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		ReleaseVersion: raw.ReleaseVersion,
		BuildNumber:    raw.BuildNumber,
		DownloadURL:    raw.DownloadURL,
		ReleaseNotes:   raw.ReleaseNotes,
		ReleaseURL:     raw.ReleaseURL,
		AppcastPath:    raw.AppcastPath,
		SignaturePath:  raw.SignaturePath,
		OutputPath:     raw.OutputPath,
		ProfilePath:    raw.ProfilePath,
		Serve:          raw.Serve,
		Port:           raw.Port,
		Timezone:       raw.Timezone,
		Debug:          raw.Debug,
		Version:        GetVersion(),
	}

	if err := applyTimezone(cfg.Timezone); err != nil {
		fmt.Printf("Warning: Invalid timezone '%s', using system default: %v\n", cfg.Timezone, err)
	}

	globalCfg = cfg

	return cfg, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}

func applyTimezone(timezone string) error {
	if timezone != "" {
		if loc, err := time.LoadLocation(timezone); err != nil {
			return err
		} else {
			time.Local = loc
		}
	}
	return nil
}
