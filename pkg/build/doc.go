// pkg/build/doc.go

/*
Package build is the host side of cudatool: a small construction
environment in the style of SCons that tools configure and then build with.

It handles:
  - Scalar and list settings, with append-only list mutation
  - The execution environment (ENV) handed to child processes
  - $VARIABLE substitution of command templates
  - Static and shared object builders keyed by source suffix
  - Source-file scanners keyed by suffix, with a C-family include scanner

Basic Usage:

    env := build.NewEnvironment(nil)
    env.Append("CPPPATH", "/opt/cuda/include")

    static, _ := env.ObjectBuilders()
    static.AddAction(".cu", "$STATICNVCCCMD")

    targets, err := static.Build(ctx, env, "", "kernel.cu")

Tools never replace list settings. Calling a tool twice on the same
environment appends its entries twice.
*/
package build
