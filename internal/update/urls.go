package update

import "runtime"

// Platform artifact names published by the yt-dlp release feed
const (
	ArtifactBaseURL = "https://github.com/yt-dlp/yt-dlp/releases/latest/download/"

	ArtifactMacOS   = "yt-dlp_macos"
	ArtifactWindows = "yt-dlp.exe"
	ArtifactLinux   = "yt-dlp_linux"
	ArtifactGeneric = "yt-dlp"
)

// ArtifactURL returns the platform-specific download URL and the destination
// filename under the bin directory.
func ArtifactURL() (url, filename string) {
	switch runtime.GOOS {
	case "darwin":
		return ArtifactBaseURL + ArtifactMacOS, "yt-dlp"
	case "windows":
		return ArtifactBaseURL + ArtifactWindows, "yt-dlp.exe"
	case "linux":
		if runtime.GOARCH == "amd64" {
			return ArtifactBaseURL + ArtifactLinux, "yt-dlp"
		}
		return ArtifactBaseURL + ArtifactGeneric, "yt-dlp"
	default:
		return ArtifactBaseURL + ArtifactGeneric, "yt-dlp"
	}
}
