package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cbuild/cmd/cbuild/commands"
	"go.trai.ch/cbuild/internal/app"
	"go.trai.ch/cbuild/internal/build"
	embedgen "go.trai.ch/cbuild/internal/engine/embed"
)

type mockApp struct {
	buildFunc func(ctx context.Context, opts app.BuildOptions) error
	cleanFunc func(ctx context.Context) error
	watchFunc func(ctx context.Context, opts app.WatchOptions) error
	embedFunc func(ctx context.Context, src, out string, kind embedgen.Kind) error
}

func (m *mockApp) Build(ctx context.Context, opts app.BuildOptions) error {
	if m.buildFunc != nil {
		return m.buildFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) Clean(ctx context.Context) error {
	if m.cleanFunc != nil {
		return m.cleanFunc(ctx)
	}
	return nil
}

func (m *mockApp) Watch(ctx context.Context, opts app.WatchOptions) error {
	if m.watchFunc != nil {
		return m.watchFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) Embed(ctx context.Context, src, out string, kind embedgen.Kind) error {
	if m.embedFunc != nil {
		return m.embedFunc(ctx, src, out, kind)
	}
	return nil
}

func TestCommands_Build(t *testing.T) {
	t.Run("root command builds", func(t *testing.T) {
		var capturedOpts app.BuildOptions
		called := false

		mock := &mockApp{
			buildFunc: func(_ context.Context, opts app.BuildOptions) error {
				capturedOpts = opts
				called = true
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.True(t, called)
		assert.Empty(t, capturedOpts.CC)
	})

	t.Run("wires the cc flag", func(t *testing.T) {
		var capturedOpts app.BuildOptions

		mock := &mockApp{
			buildFunc: func(_ context.Context, opts app.BuildOptions) error {
				capturedOpts = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"--cc", "clang"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "clang", capturedOpts.CC)
	})

	t.Run("returns error on build failure", func(t *testing.T) {
		mock := &mockApp{
			buildFunc: func(_ context.Context, _ app.BuildOptions) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})

	t.Run("rejects positional arguments", func(t *testing.T) {
		mock := &mockApp{
			buildFunc: func(_ context.Context, _ app.BuildOptions) error {
				panic("should not be called")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"unexpected"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
	})
}

func TestCommands_Clean(t *testing.T) {
	called := false
	mock := &mockApp{
		cleanFunc: func(_ context.Context) error {
			called = true
			return nil
		},
	}

	cli := commands.New(mock)
	cli.SetArgs([]string{"clean"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)
	assert.True(t, called)
}

func TestCommands_Watch(t *testing.T) {
	var capturedOpts app.WatchOptions

	mock := &mockApp{
		watchFunc: func(_ context.Context, opts app.WatchOptions) error {
			capturedOpts = opts
			return nil
		},
	}

	cli := commands.New(mock)
	cli.SetArgs([]string{"watch", "--cc", "gcc", "--debounce", "500ms"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "gcc", capturedOpts.CC)
	assert.Equal(t, 500*time.Millisecond, capturedOpts.Debounce)
}

func TestCommands_Embed(t *testing.T) {
	t.Run("defaults to string array", func(t *testing.T) {
		var capturedSrc, capturedOut string
		var capturedKind embedgen.Kind

		mock := &mockApp{
			embedFunc: func(_ context.Context, src, out string, kind embedgen.Kind) error {
				capturedSrc = src
				capturedOut = out
				capturedKind = kind
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"embed", "banner.txt", "banner.h"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "banner.txt", capturedSrc)
		assert.Equal(t, "banner.h", capturedOut)
		assert.Equal(t, embedgen.KindString, capturedKind)
	})

	t.Run("bytes flag selects the byte array", func(t *testing.T) {
		var capturedKind embedgen.Kind

		mock := &mockApp{
			embedFunc: func(_ context.Context, _, _ string, kind embedgen.Kind) error {
				capturedKind = kind
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"embed", "--bytes", "logo.png", "logo.h"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, embedgen.KindBytes, capturedKind)
	})

	t.Run("requires exactly two arguments", func(t *testing.T) {
		mock := &mockApp{
			embedFunc: func(_ context.Context, _, _ string, _ embedgen.Kind) error {
				panic("should not be called")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"embed", "only-one"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
	})
}

func TestCommands_Version(t *testing.T) {
	mock := &mockApp{}
	cli := commands.New(mock)

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), build.Version)
}
