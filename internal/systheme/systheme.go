// Package systheme reads the operating system's light/dark preference.
package systheme

import (
	"errors"

	"winget-installer/internal/logger"
)

// ErrUnsupported is returned by Detect on platforms without a readable setting
var ErrUnsupported = errors.New("system theme detection not supported on this platform")

// Sampler reports whether the host currently prefers a dark theme.
// Implementations must be quick and must not panic.
type Sampler interface {
	IsDark() bool
}

// SamplerFunc adapts a plain function to Sampler
type SamplerFunc func() bool

func (f SamplerFunc) IsDark() bool {
	return f()
}

// DetectorFunc is the fallible query behind a Sampler
type DetectorFunc func() (bool, error)

type systemSampler struct {
	detect DetectorFunc
	log    logger.Logger
}

// System returns the Sampler for the running platform.
// Any detection failure reads as light.
func System(log logger.Logger) Sampler {
	return FromDetector(Detect, log)
}

// FromDetector wraps detect so that errors and panics map to light
func FromDetector(detect DetectorFunc, log logger.Logger) Sampler {
	if log == nil {
		log = logger.Nop()
	}
	return &systemSampler{detect: detect, log: log}
}

func (s *systemSampler) IsDark() (dark bool) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Warning("SystemTheme", "theme query panicked, assuming light", map[string]interface{}{
				"panic": r,
			})
			dark = false
		}
	}()

	dark, err := s.detect()
	if err != nil {
		s.log.Debug("SystemTheme", "theme query failed, assuming light", map[string]interface{}{
			"error": err,
		})
		return false
	}
	return dark
}
