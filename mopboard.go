package mopboard

var (
	version = "0.3.1" // manually set semantic version number
	commit  string    // automatically set git commit hash

	// Version exposes the app version, set at build time together
	// with the commit hash when available.
	Version = func() string {
		if commit != "" {
			return version + "-" + commit
		}
		return version
	}()
)
