// Package packagemanager builds and runs the fixed winget and Chocolatey
// command lines used by the installer.
package packagemanager

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

type Manager string

const (
	Winget     Manager = "winget"
	Chocolatey Manager = "chocolatey"
)

const (
	SearchTimeout  = 10 * time.Second
	InstallTimeout = 300 * time.Second
)

var (
	ErrUnknownManager = errors.New("unknown package manager")
	ErrEmptyArgument  = errors.New("empty package argument")
)

// Managers lists the supported managers in display order
func Managers() []Manager {
	return []Manager{Winget, Chocolatey}
}

// ParseManager accepts "winget", "chocolatey" or "choco" in any case
func ParseManager(name string) (Manager, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "winget":
		return Winget, nil
	case "chocolatey", "choco":
		return Chocolatey, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownManager, name)
}

// Executable is the program name looked up on PATH
func (m Manager) Executable() string {
	switch m {
	case Winget:
		return "winget"
	case Chocolatey:
		return "choco"
	}
	return ""
}

func (m Manager) DisplayName() string {
	switch m {
	case Winget:
		return "WinGet"
	case Chocolatey:
		return "Chocolatey"
	}
	return string(m)
}

func (m Manager) String() string {
	return string(m)
}

// Command is one external invocation with its deadline
type Command struct {
	Name    string
	Args    []string
	Timeout time.Duration
}

func (c Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// SearchCommand returns the search invocation for query
func SearchCommand(m Manager, query string) (Command, error) {
	if strings.TrimSpace(query) == "" {
		return Command{}, fmt.Errorf("search: %w", ErrEmptyArgument)
	}

	switch m {
	case Winget:
		return Command{Name: m.Executable(), Args: []string{"search", query}, Timeout: SearchTimeout}, nil
	case Chocolatey:
		return Command{Name: m.Executable(), Args: []string{"search", query}, Timeout: SearchTimeout}, nil
	}
	return Command{}, fmt.Errorf("%w: %q", ErrUnknownManager, string(m))
}

// InstallCommand returns the non-interactive install invocation for a package id
func InstallCommand(m Manager, id string) (Command, error) {
	if strings.TrimSpace(id) == "" {
		return Command{}, fmt.Errorf("install: %w", ErrEmptyArgument)
	}

	switch m {
	case Winget:
		return Command{
			Name: m.Executable(),
			Args: []string{
				"install", "-e", "--id", id,
				"--accept-package-agreements", "--accept-source-agreements",
			},
			Timeout: InstallTimeout,
		}, nil
	case Chocolatey:
		return Command{Name: m.Executable(), Args: []string{"install", id, "-y"}, Timeout: InstallTimeout}, nil
	}
	return Command{}, fmt.Errorf("%w: %q", ErrUnknownManager, string(m))
}
