//go:build !linux

package ddc

import "fmt"

// Open is unavailable off Linux; DDC/CI needs the i2c-dev interface.
func Open(devPath string) (Control, error) {
	return nil, fmt.Errorf("ddc: not supported on this platform")
}
