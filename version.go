package signgloss

// Name is the library and CLI name.
const Name = "signgloss"

// Version is the semantic version. Override for releases with:
//
//	go build -ldflags "-X github.com/RebelAKL/signgloss.Version=1.0.0"
const Version = "0.1.0"

// Set via ldflags at build time.
var (
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// FullVersion returns the version, suffixed with a short commit hash when one
// was baked in.
func FullVersion() string {
	if GitCommit == "unknown" || GitCommit == "" {
		return Version
	}
	short := GitCommit
	if len(short) > 7 {
		short = short[:7]
	}
	return Version + "+" + short
}
