package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"winget-installer/internal/logger"
	"winget-installer/internal/models"
	"winget-installer/internal/packagemanager"
	"winget-installer/internal/shutdown"
)

type fakeRunner struct {
	mu    sync.Mutex
	calls [][]string
	run   func(ctx context.Context, name string, args []string) ([]byte, error)
}

func (f *fakeRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	f.mu.Lock()
	f.calls = append(f.calls, append([]string{name}, args...))
	f.mu.Unlock()

	if f.run == nil {
		return nil, nil
	}
	return f.run(ctx, name, args)
}

func (f *fakeRunner) Calls() [][]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([][]string(nil), f.calls...)
}

type exitStatus int

func (e exitStatus) Error() string { return fmt.Sprintf("exit status %d", int(e)) }
func (e exitStatus) ExitCode() int { return int(e) }

type recordingReporter struct {
	mu       sync.Mutex
	statuses []string
	results  []string
	notices  []models.Notice
}

func (r *recordingReporter) SetStatus(s string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.statuses = append(r.statuses, s)
}

func (r *recordingReporter) SetSearchResults(text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results = append(r.results, text)
}

func (r *recordingReporter) Notify(n models.Notice) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = append(r.notices, n)
}

func (r *recordingReporter) lastStatus() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.statuses) == 0 {
		return ""
	}
	return r.statuses[len(r.statuses)-1]
}

func newService(run func(ctx context.Context, name string, args []string) ([]byte, error)) (*PackageService, *fakeRunner, *recordingReporter) {
	runner := &fakeRunner{run: run}
	reporter := &recordingReporter{}
	return NewPackageService(context.Background(), runner, reporter, logger.Nop()), runner, reporter
}

func TestStartSearchRejectsEmptyQuery(t *testing.T) {
	ps, runner, reporter := newService(nil)

	err := ps.StartSearch("   ")

	assert.ErrorIs(t, err, ErrEmptyQuery)
	ps.Wait()
	assert.Empty(t, runner.Calls())
	assert.Empty(t, reporter.statuses)
}

func TestStartSearchReportsOutput(t *testing.T) {
	ps, runner, reporter := newService(func(context.Context, string, []string) ([]byte, error) {
		return []byte("Name    Id\nGit     Git.Git"), nil
	})

	require.NoError(t, ps.StartSearch("git"))
	ps.Wait()

	assert.Equal(t, [][]string{{"winget", "search", "git"}}, runner.Calls())
	assert.Equal(t, []string{"Searching...", "Search complete"}, reporter.statuses)
	assert.Equal(t, []string{"Name    Id\nGit     Git.Git"}, reporter.results)
}

func TestSearchWithNoMatchesStillShowsOutput(t *testing.T) {
	ps, _, reporter := newService(func(context.Context, string, []string) ([]byte, error) {
		return []byte("No package found matching input criteria."), exitStatus(1)
	})

	require.NoError(t, ps.StartSearch("zzz"))
	ps.Wait()

	assert.Equal(t, "Search complete", reporter.lastStatus())
	assert.Equal(t, []string{"No package found matching input criteria."}, reporter.results)
}

func TestSearchErrorReported(t *testing.T) {
	ps, _, reporter := newService(func(context.Context, string, []string) ([]byte, error) {
		return nil, errors.New("executable file not found")
	})

	require.NoError(t, ps.StartSearch("git"))
	ps.Wait()

	assert.Equal(t, "Error", reporter.lastStatus())
	require.Len(t, reporter.results, 1)
	assert.True(t, strings.HasPrefix(reporter.results[0], "Error: "))
}

func TestSearchUsesSelectedManager(t *testing.T) {
	ps, runner, _ := newService(nil)
	ps.SetManager(packagemanager.Chocolatey)

	require.NoError(t, ps.StartSearch("7zip"))
	ps.Wait()

	assert.Equal(t, packagemanager.Chocolatey, ps.Manager())
	assert.Equal(t, [][]string{{"choco", "search", "7zip"}}, runner.Calls())
}

func TestStartInstallSuccess(t *testing.T) {
	ps, runner, reporter := newService(nil)

	require.NoError(t, ps.StartInstall("Mozilla.Firefox", "Firefox"))
	ps.Wait()

	assert.Equal(t, [][]string{{
		"winget", "install", "-e", "--id", "Mozilla.Firefox",
		"--accept-package-agreements", "--accept-source-agreements",
	}}, runner.Calls())
	assert.Equal(t, []string{"Installing Firefox...", "✓ Mozilla.Firefox installed successfully"}, reporter.statuses)
	assert.Equal(t, []models.Notice{models.InfoNotice("Success", "Mozilla.Firefox installed successfully!")}, reporter.notices)
}

func TestStartInstallDefaultsDisplayName(t *testing.T) {
	ps, _, reporter := newService(nil)

	require.NoError(t, ps.StartInstall("Git.Git", ""))
	ps.Wait()

	assert.Equal(t, "Installing Git.Git...", reporter.statuses[0])
}

func TestStartInstallRejectsEmptyID(t *testing.T) {
	ps, runner, _ := newService(nil)

	assert.ErrorIs(t, ps.StartInstall("", "Firefox"), ErrEmptyPackageID)
	ps.Wait()
	assert.Empty(t, runner.Calls())
}

func TestStartInstallFailure(t *testing.T) {
	ps, _, reporter := newService(func(context.Context, string, []string) ([]byte, error) {
		return nil, exitStatus(1)
	})

	require.NoError(t, ps.StartInstall("Spotify.Spotify", "Spotify"))
	ps.Wait()

	assert.Equal(t, "Installation failed", reporter.lastStatus())
	assert.Equal(t, []models.Notice{models.ErrorNotice("Error", "Failed to install Spotify.Spotify")}, reporter.notices)
}

func TestStartInstallOtherError(t *testing.T) {
	ps, _, reporter := newService(func(context.Context, string, []string) ([]byte, error) {
		return nil, errors.New("access denied")
	})

	require.NoError(t, ps.StartInstall("Git.Git", "Git"))
	ps.Wait()

	assert.Equal(t, "Error", reporter.lastStatus())
	require.Len(t, reporter.notices, 1)
	assert.Equal(t, models.NoticeError, reporter.notices[0].Kind)
	assert.Equal(t, "access denied", reporter.notices[0].Message)
}

func TestInstallAllRunsConcurrently(t *testing.T) {
	const n = 3
	var running, peak atomic.Int32
	release := make(chan struct{})
	started := make(chan struct{}, n)

	ps, _, _ := newService(func(ctx context.Context, _ string, _ []string) ([]byte, error) {
		cur := running.Add(1)
		for {
			p := peak.Load()
			if cur <= p || peak.CompareAndSwap(p, cur) {
				break
			}
		}
		started <- struct{}{}
		<-release
		running.Add(-1)
		return nil, nil
	})

	done := make(chan []packagemanager.Result)
	go func() {
		done <- ps.InstallAll(context.Background(), []string{"a", "b", "c"}, nil)
	}()

	for i := 0; i < n; i++ {
		select {
		case <-started:
		case <-time.After(5 * time.Second):
			t.Fatal("installs did not start concurrently")
		}
	}
	close(release)

	results := <-done
	require.Len(t, results, n)
	assert.Equal(t, int32(n), peak.Load())
	for i, id := range []string{"a", "b", "c"} {
		assert.Equal(t, id, results[i].Command.Args[3])
		assert.True(t, results[i].OK())
	}
}

func TestStartInstallCategoryReportsEachApp(t *testing.T) {
	ps, runner, reporter := newService(func(_ context.Context, _ string, args []string) ([]byte, error) {
		if args[3] == "Spotify.Spotify" {
			return nil, exitStatus(1)
		}
		return nil, nil
	})
	apps := models.DefaultCatalog().Apps("Media")

	ps.StartInstallCategory("Media", apps)
	ps.Wait()

	assert.Len(t, runner.Calls(), 2)
	assert.Equal(t, "Installing 2 apps from Media...", reporter.statuses[0])
	assert.ElementsMatch(t, []models.Notice{
		models.InfoNotice("Success", "VideoLAN.VLC installed successfully!"),
		models.ErrorNotice("Error", "Failed to install Spotify.Spotify"),
	}, reporter.notices)
}

func TestStartInstallCategoryEmpty(t *testing.T) {
	ps, runner, reporter := newService(nil)

	ps.StartInstallCategory("Games", nil)
	ps.Wait()

	assert.Empty(t, runner.Calls())
	assert.Empty(t, reporter.statuses)
}

func TestShutdownCancelsRunningInstall(t *testing.T) {
	started := make(chan struct{})
	ps, _, reporter := newService(func(ctx context.Context, _ string, _ []string) ([]byte, error) {
		close(started)
		<-ctx.Done()
		return nil, ctx.Err()
	})

	require.NoError(t, ps.StartInstall("Git.Git", "Git"))
	<-started
	ps.Shutdown()

	assert.Equal(t, "Error", reporter.lastStatus())
}

func TestLifecycleShutdownCancelsRunningInstall(t *testing.T) {
	lifecycle := shutdown.NewManager(logger.Nop())

	started := make(chan struct{})
	var runErr atomic.Value
	runner := &fakeRunner{run: func(ctx context.Context, _ string, _ []string) ([]byte, error) {
		close(started)
		<-ctx.Done()
		runErr.Store(ctx.Err())
		return nil, ctx.Err()
	}}
	reporter := &recordingReporter{}
	ps := NewPackageService(lifecycle.Context(), runner, reporter, logger.Nop())

	require.NoError(t, ps.StartInstall("Git.Git", "Git"))
	select {
	case <-started:
	case <-time.After(2 * time.Second):
		t.Fatal("install never started")
	}

	// the service itself is not registered; only the lifecycle context stops it
	lifecycle.Shutdown()
	ps.Wait()

	assert.ErrorIs(t, runErr.Load().(error), context.Canceled)
	assert.Equal(t, "Error", reporter.lastStatus())
}
