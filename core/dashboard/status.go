package dashboard

import (
	"net/http"
	"strings"

	"github.com/coreos/go-semver/semver"
	mopboard "github.com/redesblock/mopboard"
	"github.com/redesblock/mopboard/core/jsonhttp"
)

// SupportedNodeVersion is the node version line this dashboard is built
// against. Nodes on the same major and minor line are reported compatible.
const SupportedNodeVersion = "1.2.0"

type statusResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

func (s *server) healthHandler(w http.ResponseWriter, _ *http.Request) {
	jsonhttp.OK(w, statusResponse{
		Status:  "ok",
		Version: mopboard.Version,
	})
}

func (s *server) readinessHandler(w http.ResponseWriter, _ *http.Request) {
	jsonhttp.OK(w, statusResponse{
		Status:  "ok",
		Version: mopboard.Version,
	})
}

type nodeResponse struct {
	Connected       bool   `json:"connected"`
	Version         string `json:"version,omitempty"`
	DebugAPIVersion string `json:"debugApiVersion,omitempty"`
	Compatible      bool   `json:"compatible"`
}

// nodeHandler reports whether the node's debug API is reachable and whether
// the node version is on the supported line.
func (s *server) nodeHandler(w http.ResponseWriter, r *http.Request) {
	status, err := s.Client.Status(r.Context())
	if err != nil {
		s.Logger.Debugf("dashboard api: node status: %v", err)
		jsonhttp.OK(w, nodeResponse{Connected: false})
		return
	}

	jsonhttp.OK(w, nodeResponse{
		Connected:       true,
		Version:         status.Version,
		DebugAPIVersion: status.DebugAPIVersion,
		Compatible:      versionCompatible(status.Version),
	})
}

// versionCompatible compares a reported node version against
// SupportedNodeVersion on the major and minor components. Build metadata
// and commit suffixes after a dash are ignored.
func versionCompatible(nodeVersion string) bool {
	if i := strings.IndexByte(nodeVersion, '-'); i >= 0 {
		nodeVersion = nodeVersion[:i]
	}
	got, err := semver.NewVersion(nodeVersion)
	if err != nil {
		return false
	}
	want := semver.New(SupportedNodeVersion)
	return got.Major == want.Major && got.Minor == want.Minor
}
