package assets

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"
)

// LandmarkData is the name of the bundled landmark asset inside FS.
const LandmarkData = "landmarkData.json"

//go:embed landmarkData.json
var FS embed.FS

// Source returns the filesystem and file name to load landmarks from. An empty
// path selects the bundled asset.
func Source(path string) (fs.FS, string) {
	if path == "" {
		return FS, LandmarkData
	}
	return os.DirFS(filepath.Dir(path)), filepath.Base(path)
}
