package versioning

// Build metadata for the gateway binary, embedded with --ldflags at build
// time. Version follows SemVer.
var (
	Version   string
	Branch    string
	Commit    string
	BuildTime string
)
