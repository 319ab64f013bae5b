package systheme

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"winget-installer/internal/logger"
)

func TestFromDetectorPassesValueThrough(t *testing.T) {
	assert.True(t, FromDetector(func() (bool, error) { return true, nil }, logger.Nop()).IsDark())
	assert.False(t, FromDetector(func() (bool, error) { return false, nil }, nil).IsDark())
}

func TestFromDetectorErrorReadsAsLight(t *testing.T) {
	s := FromDetector(func() (bool, error) { return true, ErrUnsupported }, logger.Nop())
	assert.False(t, s.IsDark())

	s = FromDetector(func() (bool, error) { return true, errors.New("access denied") }, logger.Nop())
	assert.False(t, s.IsDark())
}

func TestFromDetectorPanicReadsAsLight(t *testing.T) {
	s := FromDetector(func() (bool, error) { panic("registry gone") }, logger.Nop())

	assert.NotPanics(t, func() {
		assert.False(t, s.IsDark())
	})
}

func TestSamplerFunc(t *testing.T) {
	calls := 0
	var s Sampler = SamplerFunc(func() bool {
		calls++
		return true
	})

	assert.True(t, s.IsDark())
	assert.Equal(t, 1, calls)
}
