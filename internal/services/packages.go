package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"winget-installer/internal/logger"
	"winget-installer/internal/models"
	"winget-installer/internal/packagemanager"
)

var (
	ErrEmptyQuery     = errors.New("enter a package name")
	ErrEmptyPackageID = errors.New("enter a package ID")
)

// Reporter receives the results of background package operations.
// Calls arrive from worker goroutines; the status is last-writer-wins.
type Reporter interface {
	SetStatus(status string)
	SetSearchResults(text string)
	Notify(notice models.Notice)
}

// PackageService dispatches search and install requests to the selected
// package manager. Every request runs on its own goroutine with no cap on
// concurrency.
type PackageService struct {
	runner   packagemanager.Runner
	reporter Reporter
	log      logger.Logger

	mu      sync.RWMutex
	manager packagemanager.Manager

	ctx      context.Context
	cancel   context.CancelFunc
	inFlight sync.WaitGroup
}

// NewPackageService creates a service that uses winget until SetManager is
// called. Cancelling parent kills every running package-manager process.
func NewPackageService(parent context.Context, runner packagemanager.Runner, reporter Reporter, log logger.Logger) *PackageService {
	if log == nil {
		log = logger.Nop()
	}
	ctx, cancel := context.WithCancel(parent)

	return &PackageService{
		runner:   runner,
		reporter: reporter,
		log:      log,
		manager:  packagemanager.Winget,
		ctx:      ctx,
		cancel:   cancel,
	}
}

func (ps *PackageService) SetManager(m packagemanager.Manager) {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	ps.manager = m
}

func (ps *PackageService) Manager() packagemanager.Manager {
	ps.mu.RLock()
	defer ps.mu.RUnlock()
	return ps.manager
}

// Search runs the manager's search synchronously
func (ps *PackageService) Search(ctx context.Context, query string) (packagemanager.Result, error) {
	cmd, err := packagemanager.SearchCommand(ps.Manager(), query)
	if err != nil {
		return packagemanager.Result{}, err
	}
	return ps.execute(ctx, "search", cmd), nil
}

// Install runs the manager's install synchronously
func (ps *PackageService) Install(ctx context.Context, packageID string) (packagemanager.Result, error) {
	cmd, err := packagemanager.InstallCommand(ps.Manager(), packageID)
	if err != nil {
		return packagemanager.Result{}, err
	}
	return ps.execute(ctx, "install", cmd), nil
}

// InstallAll installs every package concurrently and returns results in input order
func (ps *PackageService) InstallAll(ctx context.Context, packageIDs []string, each func(string, packagemanager.Result, error)) []packagemanager.Result {
	results := make([]packagemanager.Result, len(packageIDs))

	var g errgroup.Group
	for i, id := range packageIDs {
		g.Go(func() error {
			result, err := ps.Install(ctx, id)
			results[i] = result
			if each != nil {
				each(id, result, err)
			}
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// StartSearch validates the query and searches in the background
func (ps *PackageService) StartSearch(query string) error {
	query = strings.TrimSpace(query)
	if query == "" {
		return ErrEmptyQuery
	}

	ps.reporter.SetStatus("Searching...")
	ps.goTracked(func(ctx context.Context) {
		result, err := ps.Search(ctx, query)
		ps.reportSearch(result, err)
	})
	return nil
}

// StartInstall validates the id and installs in the background.
// displayName is used for the in-progress status and defaults to the id.
func (ps *PackageService) StartInstall(packageID, displayName string) error {
	packageID = strings.TrimSpace(packageID)
	if packageID == "" {
		return ErrEmptyPackageID
	}
	if displayName == "" {
		displayName = packageID
	}

	ps.reporter.SetStatus(fmt.Sprintf("Installing %s...", displayName))
	ps.goTracked(func(ctx context.Context) {
		result, err := ps.Install(ctx, packageID)
		ps.reportInstall(packageID, result, err)
	})
	return nil
}

// StartInstallCategory installs every app of a category at once
func (ps *PackageService) StartInstallCategory(category string, apps []models.App) {
	if len(apps) == 0 {
		return
	}

	ids := make([]string, len(apps))
	for i, app := range apps {
		ids[i] = app.PackageID
	}

	ps.reporter.SetStatus(fmt.Sprintf("Installing %d apps from %s...", len(apps), category))
	ps.goTracked(func(ctx context.Context) {
		results := ps.InstallAll(ctx, ids, ps.reportInstall)

		failed := 0
		for _, r := range results {
			if !r.OK() {
				failed++
			}
		}
		ps.log.Info("PackageService", "category install finished", map[string]interface{}{
			"category": category,
			"total":    len(results),
			"failed":   failed,
		})
	})
}

// Wait blocks until every background operation has reported
func (ps *PackageService) Wait() {
	ps.inFlight.Wait()
}

// Shutdown cancels running package-manager processes
func (ps *PackageService) Shutdown() {
	ps.cancel()
	ps.inFlight.Wait()
	ps.log.Debug("PackageService", "shutdown completed", nil)
}

func (ps *PackageService) goTracked(fn func(ctx context.Context)) {
	ps.inFlight.Add(1)
	go func() {
		defer ps.inFlight.Done()
		fn(ps.ctx)
	}()
}

func (ps *PackageService) execute(ctx context.Context, op string, cmd packagemanager.Command) packagemanager.Result {
	opID := uuid.NewString()
	ps.log.Info("PackageService", op+" started", map[string]interface{}{
		"operation": opID,
		"command":   cmd.String(),
	})

	result := packagemanager.Execute(ctx, ps.runner, cmd)

	fields := map[string]interface{}{
		"operation": opID,
		"status":    result.Status.String(),
		"duration":  result.Duration.String(),
	}
	if result.OK() {
		ps.log.Info("PackageService", op+" finished", fields)
	} else {
		fields["exit_code"] = result.ExitCode
		if result.Err != nil {
			fields["error"] = result.Err
		}
		ps.log.Warning("PackageService", op+" did not succeed", fields)
	}
	return result
}

func (ps *PackageService) reportSearch(result packagemanager.Result, err error) {
	if err != nil {
		ps.reporter.SetSearchResults(fmt.Sprintf("Error: %v", err))
		ps.reporter.SetStatus("Error")
		return
	}

	switch result.Status {
	case packagemanager.Succeeded, packagemanager.Failed:
		// winget exits non-zero when nothing matches; its output says so
		ps.reporter.SetSearchResults(string(result.Output))
		ps.reporter.SetStatus("Search complete")
	default:
		ps.reporter.SetSearchResults(fmt.Sprintf("Error: %v", result.Err))
		ps.reporter.SetStatus("Error")
	}
}

func (ps *PackageService) reportInstall(packageID string, result packagemanager.Result, err error) {
	if err != nil {
		ps.reporter.SetStatus("Error")
		ps.reporter.Notify(models.ErrorNotice("Error", err.Error()))
		return
	}

	switch result.Status {
	case packagemanager.Succeeded:
		ps.reporter.SetStatus(fmt.Sprintf("✓ %s installed successfully", packageID))
		ps.reporter.Notify(models.InfoNotice("Success", fmt.Sprintf("%s installed successfully!", packageID)))
	case packagemanager.Failed:
		ps.reporter.SetStatus("Installation failed")
		ps.reporter.Notify(models.ErrorNotice("Error", fmt.Sprintf("Failed to install %s", packageID)))
	case packagemanager.TimedOut:
		ps.reporter.SetStatus("Error")
		ps.reporter.Notify(models.ErrorNotice("Error", fmt.Sprintf("Installing %s timed out", packageID)))
	default:
		ps.reporter.SetStatus("Error")
		ps.reporter.Notify(models.ErrorNotice("Error", fmt.Sprint(result.Err)))
	}
}
