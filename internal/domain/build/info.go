// Package build provides domain entities for build information.
package build

// Info holds build-time information injected via ldflags.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
}

// IsDev reports whether this is an unreleased development build.
func (i Info) IsDev() bool {
	return i.Version == "" || i.Version == "dev"
}

// RepoURL returns the GitHub repository URL.
func RepoURL() string {
	return "https://github.com/chanomhub/desktop"
}
