// pkg/cuda/tool.go
package cuda

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/arc-language/cudatool/pkg/build"
)

// Options configures Generate
type Options struct {
	// Locations are interpolated into the candidate list.
	// nil means LocationsFromEnv.
	Locations *Locations

	// SideArtifacts adds generated files to every .cu object target
	SideArtifacts SideArtifacts

	// Logger for discovery output (default: discarded)
	Logger *logrus.Logger
}

func (o *Options) withDefaults() *Options {
	out := Options{}
	if o != nil {
		out = *o
	}
	if out.Locations == nil {
		l := LocationsFromEnv()
		out.Locations = &l
	}
	if out.Logger == nil {
		out.Logger = logrus.New()
		out.Logger.SetOutput(io.Discard)
	}
	return &out
}

// Generate configures env to compile .cu sources with nvcc.
//
// The toolkit root is resolved first; on ErrToolkitNotFound env is left
// untouched. List settings are appended to, never replaced, so calling
// Generate twice on one environment duplicates their entries.
func Generate(env *build.Environment, opts *Options) error {
	opts = opts.withDefaults()

	root, err := ResolveRoot(env, opts)
	if err != nil {
		return err
	}
	env.Set(ToolkitPathKey, root)

	env.SetDefault(CompilerKey, DefaultCompiler)
	env.Set(FlagsKey, "")
	env.Set(StaticFlagsKey, "")
	env.Set(SharedFlagsKey, "")
	env.Set(EnableSharedKey, EnableSharedFlag)
	env.Set(StaticCommandKey, StaticCommand)
	env.Set(SharedCommandKey, SharedCommand)

	// nvcc from the toolkit must shadow any other nvcc on PATH
	env.PrependENVPath(ExecutablePathName, root+binDir)
	env.Append(IncludePathKey, root+includeDir)
	env.Append(LibraryPathKey, root+libDir)
	env.Append(RuntimePathKey, root+libDir)
	env.Append(LibrariesKey, RuntimeLibrary)

	static, shared := env.ObjectBuilders()
	static.AddAction(Suffix, "$"+StaticCommandKey)
	static.AddEmitter(Suffix, objectEmitter(build.StaticObjectEmitter, opts.SideArtifacts))
	shared.AddAction(Suffix, "$"+SharedCommandKey)
	shared.AddEmitter(Suffix, objectEmitter(build.SharedObjectEmitter, opts.SideArtifacts))
	env.SourceScanners().AddScanner(Suffix, build.CScanner())

	opts.Logger.WithField("root", root).Debug("configured CUDA toolchain")
	return nil
}

// Exists reports whether the configured compiler, or nvcc, is on env's PATH
func Exists(env *build.Environment) bool {
	name := DefaultCompiler
	if env.Has(CompilerKey) && env.Get(CompilerKey) != "" {
		name = env.Get(CompilerKey)
	}
	return env.Detect(name) != ""
}
