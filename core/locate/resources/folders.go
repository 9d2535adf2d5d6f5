package resources

import (
	"os"

	"github.com/npillmayer/glyphstack/core"
)

// PrepareDir checks and possibly creates a folder, typically the output
// folder for ligature images. Non-existing parent folders are created as
// necessary (with permissions 755). It is an error if path exists but is
// not a folder.
func PrepareDir(path string) (string, error) {
	fi, err := os.Stat(path)
	if os.IsNotExist(err) {
		tracer().Infof("creating folder %s", path)
		if err = os.MkdirAll(path, 0755); err != nil {
			return "", core.WrapError(err, core.EIO, "folder cannot be created: %s", path)
		}
		return path, nil
	}
	if err != nil {
		return "", core.WrapError(err, core.EIO, "folder cannot be accessed: %s", path)
	}
	if !fi.IsDir() {
		return "", core.Error(core.EINVALID, "not a folder: %s", path)
	}
	return path, nil
}
