package domain

// CompilerRelease is a published solc build matching a configured version
type CompilerRelease struct {
	Version     string `json:"version"`
	LongVersion string `json:"longVersion"`
	Path        string `json:"path"`
	SHA256      string `json:"sha256,omitempty"`
	Platform    string `json:"platform"`
	DownloadURL string `json:"downloadUrl"`
	Latest      bool   `json:"latest"`
}
