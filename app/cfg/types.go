package cfg

type Cfg struct {
	// Release metadata
	ReleaseVersion string
	BuildNumber    string
	DownloadURL    string
	ReleaseNotes   string
	ReleaseURL     string

	// File paths
	AppcastPath   string
	SignaturePath string
	OutputPath    string
	ProfilePath   string

	// Preview server
	Serve bool
	Port  string

	// Application metadata
	Timezone string
	Debug    bool
	Version  string
}
