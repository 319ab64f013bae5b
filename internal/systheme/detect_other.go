//go:build !windows && !darwin && !linux && !freebsd && !openbsd && !netbsd

package systheme

func Detect() (bool, error) {
	return false, ErrUnsupported
}
