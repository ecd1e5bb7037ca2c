package hdr

import "log/slog"

// Platform performs the OS-level HDR toggle for a connector. Calls are
// best-effort: the controller records logical state whether or not the
// platform confirms.
type Platform interface {
	EnableHDR(connector string) error
	DisableHDR(connector string) error
}

// DRMPlatform would drive the KMS/DRM HDR_OUTPUT_METADATA property.
// Actually flipping connector properties requires DRM master, which the
// compositor holds, so for now the request is logged and deferred to the
// compositor session.
type DRMPlatform struct{}

func (DRMPlatform) EnableHDR(connector string) error {
	slog.Debug("hdr: platform enable requested", "connector", connector)
	return nil
}

func (DRMPlatform) DisableHDR(connector string) error {
	slog.Debug("hdr: platform disable requested", "connector", connector)
	return nil
}

// MockPlatform records toggle calls for tests and can simulate failures.
type MockPlatform struct {
	Enabled  map[string]bool
	FailNext bool
}

func NewMockPlatform() *MockPlatform {
	return &MockPlatform{Enabled: map[string]bool{}}
}

func (m *MockPlatform) EnableHDR(connector string) error {
	if m.FailNext {
		m.FailNext = false
		return errPlatform
	}
	m.Enabled[connector] = true
	return nil
}

func (m *MockPlatform) DisableHDR(connector string) error {
	if m.FailNext {
		m.FailNext = false
		return errPlatform
	}
	m.Enabled[connector] = false
	return nil
}

type platformError struct{}

func (platformError) Error() string { return "platform HDR toggle failed" }

var errPlatform = platformError{}
