// pkg/cuda/constants.go
package cuda

// Setting names read and written on the build environment
const (
	ToolkitPathKey     = "CUDA_TOOLKIT_PATH"
	CompilerKey        = "NVCC"
	FlagsKey           = "NVCCFLAGS"
	StaticFlagsKey     = "STATICNVCCFLAGS"
	SharedFlagsKey     = "SHAREDNVCCFLAGS"
	EnableSharedKey    = "ENABLESHAREDNVCCFLAG"
	StaticCommandKey   = "STATICNVCCCMD"
	SharedCommandKey   = "SHAREDNVCCCMD"
	IncludePathKey     = "CPPPATH"
	LibraryPathKey     = "LIBPATH"
	RuntimePathKey     = "RPATH"
	LibrariesKey       = "LIBS"
	ExecutablePathName = "PATH"
)

const (
	// Suffix triggers the CUDA build rules
	Suffix = ".cu"

	// DefaultCompiler is the compiler executable name
	DefaultCompiler = "nvcc"

	// EnableSharedFlag switches nvcc to shared object output
	EnableSharedFlag = "-shared"

	// RuntimeLibrary is linked into everything built with the toolkit
	RuntimeLibrary = "cudart"

	StaticCommand = "$NVCC -o $TARGET -c $NVCCFLAGS $STATICNVCCFLAGS $SOURCES"
	SharedCommand = "$NVCC -o $TARGET -c $NVCCFLAGS $SHAREDNVCCFLAGS $ENABLESHAREDNVCCFLAG $SOURCES"
)

// Directories below the toolkit root
const (
	binDir     = "/bin"
	includeDir = "/include"
	libDir     = "/lib64"
)

// candidateTemplates are probed in order; the first existing directory wins.
// $HOME, $PROGRAMFILES and $HOMEDRIVE come from Locations.
var candidateTemplates = []string{
	"$HOME/NVIDIA_CUDA_TOOLKIT",
	"$HOME/Apps/NVIDIA_CUDA_TOOLKIT",
	"$HOME/Apps/CudaToolkit",
	"$HOME/Apps/CudaTK",
	"/usr/local/NVIDIA_CUDA_TOOLKIT",
	"/usr/local/CUDA_TOOLKIT",
	"/usr/local/cuda_toolkit",
	"/usr/local/CUDA",
	"/usr/local/cuda",
	"/Developer/NVIDIA CUDA TOOLKIT",
	"/Developer/CUDA TOOLKIT",
	"/Developer/CUDA",
	"$PROGRAMFILES/NVIDIA Corporation/NVIDIA CUDA TOOLKIT",
	"$PROGRAMFILES/NVIDIA Corporation/NVIDIA CUDA",
	"$PROGRAMFILES/NVIDIA Corporation/CUDA TOOLKIT",
	"$PROGRAMFILES/NVIDIA Corporation/CUDA",
	"$PROGRAMFILES/NVIDIA/NVIDIA CUDA TOOLKIT",
	"$PROGRAMFILES/NVIDIA/NVIDIA CUDA",
	"$PROGRAMFILES/NVIDIA/CUDA TOOLKIT",
	"$PROGRAMFILES/NVIDIA/CUDA",
	"$PROGRAMFILES/CUDA TOOLKIT",
	"$PROGRAMFILES/CUDA",
	"$HOMEDRIVE/CUDA TOOLKIT",
	"$HOMEDRIVE/CUDA",
}
