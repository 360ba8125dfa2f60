// pkg/cuda/doc.go

// Package cuda configures a build environment to compile CUDA sources
// (.cu) with nvcc.
//
// Generate locates the toolkit (CUDA_TOOLKIT_PATH if already set, else the
// first existing directory of Candidates), extends the search paths and
// registers static and shared object actions for the .cu suffix. Exists
// reports whether nvcc can be run at all.
package cuda
