package platform

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func TestWhereIs(t *testing.T) {
	linux := &Platform{OS: "linux", Arch: "amd64"}
	windows := &Platform{OS: "windows", Arch: "amd64"}

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/opt/a/bin/nvcc", []byte("#!/bin/sh"), 0755))
	require.NoError(t, afero.WriteFile(fs, "/opt/b/bin/nvcc", []byte("#!/bin/sh"), 0755))
	require.NoError(t, afero.WriteFile(fs, "/opt/c/bin/nvcc", []byte("data"), 0644))
	require.NoError(t, fs.MkdirAll("/opt/d/bin/nvcc", 0755))
	require.NoError(t, afero.WriteFile(fs, "/win/bin/nvcc.exe", []byte("MZ"), 0644))

	testCases := []struct {
		description string
		platform    *Platform
		prog        string
		path        []string
		expected    string
	}{
		{
			description: "first directory wins",
			platform:    linux,
			prog:        "nvcc",
			path:        []string{"/opt/a/bin", "/opt/b/bin"},
			expected:    filepath.Join("/opt/a/bin", "nvcc"),
		},
		{
			description: "non-executable file is skipped",
			platform:    linux,
			prog:        "nvcc",
			path:        []string{"/opt/c/bin", "/opt/b/bin"},
			expected:    filepath.Join("/opt/b/bin", "nvcc"),
		},
		{
			description: "directory is skipped",
			platform:    linux,
			prog:        "nvcc",
			path:        []string{"/opt/d/bin"},
			expected:    "",
		},
		{
			description: "windows tries exe suffix",
			platform:    windows,
			prog:        "nvcc",
			path:        []string{"/win/bin"},
			expected:    filepath.Join("/win/bin", "nvcc.exe"),
		},
		{
			description: "empty path",
			platform:    linux,
			prog:        "nvcc",
			expected:    "",
		},
		{
			description: "empty program",
			platform:    linux,
			path:        []string{"/opt/a/bin"},
			expected:    "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			searchPath := ""
			for i, dir := range tc.path {
				if i > 0 {
					searchPath += string(filepath.ListSeparator)
				}
				searchPath += dir
			}
			require.Equal(t, tc.expected, WhereIs(fs, tc.platform, tc.prog, searchPath))
		})
	}
}

func TestObjectSuffixes(t *testing.T) {
	static, shared := (&Platform{OS: "linux"}).ObjectSuffixes()
	require.Equal(t, ".o", static)
	require.Equal(t, ".os", shared)

	static, shared = (&Platform{OS: "windows"}).ObjectSuffixes()
	require.Equal(t, ".obj", static)
	require.Equal(t, ".obj", shared)
}
