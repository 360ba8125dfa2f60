package build

import (
	"context"
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

type recordingRunner struct {
	argv    [][]string
	environ [][]string
	err     error
}

func (r *recordingRunner) Run(ctx context.Context, argv []string, environ []string) error {
	r.argv = append(r.argv, argv)
	r.environ = append(r.environ, environ)
	return r.err
}

func TestObjectBuilders(t *testing.T) {
	env := newTestEnvironment(afero.NewMemMapFs())

	static, shared := env.ObjectBuilders()
	require.Equal(t, "StaticObject", static.Name())
	require.Equal(t, "SharedObject", shared.Name())

	again, _ := env.ObjectBuilders()
	require.Same(t, static, again)

	static.AddAction(".cu", "$CUCMD")
	static.AddAction(".c", "$CCCOM")
	require.Equal(t, []string{".c", ".cu"}, static.Suffixes())
	require.Empty(t, shared.Suffixes())

	cmd, ok := static.Action(".cu")
	require.True(t, ok)
	require.Equal(t, "$CUCMD", cmd)
}

func TestDefaultEmitters(t *testing.T) {
	env := newTestEnvironment(afero.NewMemMapFs())

	testCases := []struct {
		description string
		emitter     Emitter
		targets     []string
		expected    []string
	}{
		{
			description: "static object named after source",
			emitter:     StaticObjectEmitter,
			expected:    []string{"src/kernel.o"},
		},
		{
			description: "shared object named after source",
			emitter:     SharedObjectEmitter,
			expected:    []string{"src/kernel.os"},
		},
		{
			description: "suffix added to bare target",
			emitter:     StaticObjectEmitter,
			targets:     []string{"build/kernel"},
			expected:    []string{"build/kernel.o"},
		},
		{
			description: "explicit target kept",
			emitter:     SharedObjectEmitter,
			targets:     []string{"build/kernel.so"},
			expected:    []string{"build/kernel.so"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			targets, sources := tc.emitter(tc.targets, []string{"src/kernel.cu"}, env)
			require.Equal(t, tc.expected, targets)
			require.Equal(t, []string{"src/kernel.cu"}, sources)
		})
	}
}

func TestBuild(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/opt/cuda/bin/nvcc", []byte{}, 0755))

	runner := &recordingRunner{}
	env := newTestEnvironment(fs, "/opt/cuda/bin")
	env.runner = runner
	env.Set("NVCC", "nvcc")
	env.Set("CUCMD", "$NVCC -o $TARGET -c $SOURCES")

	static, _ := env.ObjectBuilders()
	static.AddAction(".cu", "$CUCMD")

	targets, err := static.Build(context.Background(), env, "", "src/kernel.cu")
	require.NoError(t, err)
	require.Equal(t, []string{"src/kernel.o"}, targets)
	require.Equal(t, [][]string{{"/opt/cuda/bin/nvcc", "-o", "src/kernel.o", "-c", "src/kernel.cu"}}, runner.argv)
	require.Equal(t, []string{"PATH=/opt/cuda/bin"}, runner.environ[0])

	exists, err := afero.DirExists(fs, "src")
	require.NoError(t, err)
	require.True(t, exists)
}

func TestBuildErrors(t *testing.T) {
	env := newTestEnvironment(afero.NewMemMapFs())
	static, _ := env.ObjectBuilders()
	static.AddAction(".cu", "$CUCMD")

	_, err := static.Build(context.Background(), env, "")
	require.ErrorIs(t, err, ErrNoSources)

	_, err = static.Build(context.Background(), env, "", "a.cu", "b.c")
	require.ErrorIs(t, err, ErrMixedSources)

	_, err = static.Build(context.Background(), env, "", "a.f90")
	require.ErrorIs(t, err, ErrNoAction)

	_, err = static.Build(context.Background(), env, "", "a.cu")
	require.ErrorIs(t, err, ErrEmptyCommand)

	var buildErr *BuildError
	require.True(t, errors.As(err, &buildErr))
	require.Equal(t, "StaticObject", buildErr.Builder)
	require.Equal(t, "a.o", buildErr.Target)
}

func TestBuildRunnerFailure(t *testing.T) {
	failure := errors.New("exit status 2")
	env := newTestEnvironment(afero.NewMemMapFs())
	env.runner = &recordingRunner{err: failure}
	env.Set("CUCMD", "nvcc -c $SOURCES")

	_, shared := env.ObjectBuilders()
	shared.AddAction(".cu", "$CUCMD")

	_, err := shared.Build(context.Background(), env, "out.os", "a.cu")
	require.ErrorIs(t, err, failure)
	require.Contains(t, err.Error(), "SharedObject out.os")
}
