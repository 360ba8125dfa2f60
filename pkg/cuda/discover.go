// pkg/cuda/discover.go
package cuda

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/arc-language/cudatool/pkg/build"
)

// Discover returns the first candidate that is an existing directory.
// Probing stops at the first match.
func Discover(fs afero.Fs, candidates []string, logger *logrus.Logger) (string, error) {
	for _, path := range candidates {
		isDir, err := afero.IsDir(fs, path)
		if err != nil || !isDir {
			logger.WithField("path", path).Debug("no CUDA Toolkit")
			continue
		}
		logger.Infof("CUDA Toolkit found in %s", path)
		return path, nil
	}

	return "", &Error{Op: "discover", Err: ErrToolkitNotFound}
}

// ResolveRoot returns the toolkit root for env. An explicitly assigned
// CUDA_TOOLKIT_PATH is used verbatim without touching the filesystem.
func ResolveRoot(env *build.Environment, opts *Options) (string, error) {
	if env.Has(ToolkitPathKey) {
		return env.Get(ToolkitPathKey), nil
	}

	opts = opts.withDefaults()
	return Discover(env.Fs(), Candidates(*opts.Locations), opts.Logger)
}
