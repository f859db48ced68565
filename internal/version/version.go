package version

// Set with -ldflags "-X github.com/bnema/appversion/internal/version.Version=1.2
// -X github.com/bnema/appversion/internal/version.Build=34".
var (
	Version = ""
	Build   = ""
)

const devVersion = "dev"

func String() string {
	if Version == "" {
		return devVersion
	}
	if Build == "" {
		return Version
	}

	return Version + " (" + Build + ")"
}
