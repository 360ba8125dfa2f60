// pkg/env/doc.go

/*
Package env derives a compiler and runtime environment from a configured
build environment.

It handles:
  - Collecting binary, include, library and runtime-library paths
  - Generating compiler and linker flags
  - Finding specific libraries within the library paths
  - Creating activation scripts for shell environments

Basic Usage:

    import "github.com/arc-language/cudatool/pkg/env"

    // After cuda.Generate(buildEnv, nil)
    environment := env.FromBuild(buildEnv)

    // Find specific library
    cudart := environment.FindSharedLibrary("cudart")
    if cudart != nil {
        fmt.Printf("Found: %s at %s\n", cudart.Name, cudart.Path)
    }

    // Get compiler flags
    flags := environment.GetCompilerFlags()
    for _, flag := range flags.IncludeFlags {
        fmt.Println(flag) // -I/usr/local/cuda/include
    }

    // Shell code for eval
    fmt.Print(environment.GenerateActivateScript())
*/
package env
