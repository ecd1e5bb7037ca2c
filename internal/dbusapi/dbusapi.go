// Package dbusapi exports the color management service on the D-Bus session
// bus so desktop applications can drive it without speaking HTTP.
package dbusapi

import (
	"fmt"
	"log/slog"

	"github.com/godbus/dbus/v5"
	"github.com/godbus/dbus/v5/introspect"

	"github.com/chromad/chromad/internal/models"
	"github.com/chromad/chromad/internal/service"
)

const (
	busName       = "org.chromad.ColorManagement1"
	objectPath    = "/org/chromad/ColorManagement1"
	interfaceName = "org.chromad.ColorManagement1"
)

// Server is the exported D-Bus object.
type Server struct {
	conn *dbus.Conn
	svc  *service.ColorService
}

// Start connects to the session bus, claims the well-known name and exports
// the service object. Callers treat an error as advisory; the daemon runs
// fine without a session bus.
func Start(svc *service.ColorService) (*Server, error) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, fmt.Errorf("dbus: connect session bus: %w", err)
	}

	s := &Server{conn: conn, svc: svc}

	if err := conn.Export(s, objectPath, interfaceName); err != nil {
		conn.Close()
		return nil, fmt.Errorf("dbus: export: %w", err)
	}
	if err := conn.Export(introspect.Introspectable(s.introspectXML()), objectPath,
		"org.freedesktop.DBus.Introspectable"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("dbus: export introspection: %w", err)
	}

	reply, err := conn.RequestName(busName, dbus.NameFlagDoNotQueue)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("dbus: request name: %w", err)
	}
	if reply != dbus.RequestNameReplyPrimaryOwner {
		conn.Close()
		return nil, fmt.Errorf("dbus: name %s already taken", busName)
	}

	slog.Info("dbus: service exported", "name", busName, "path", objectPath)
	return s, nil
}

// Close releases the bus name and connection.
func (s *Server) Close() error {
	if _, err := s.conn.ReleaseName(busName); err != nil {
		slog.Warn("dbus: release name failed", "err", err)
	}
	return s.conn.Close()
}

// Method set. godbus maps exported methods 1:1 to bus methods; errors become
// D-Bus errors on the wire.

func (s *Server) IsEnabled() (bool, *dbus.Error) {
	return s.svc.IsEnabled(), nil
}

func (s *Server) SetEnabled(enabled bool) (bool, *dbus.Error) {
	return s.svc.SetEnabled(enabled), nil
}

func (s *Server) ListMonitors() ([]string, *dbus.Error) {
	return s.svc.ListMonitors(), nil
}

func (s *Server) GetMonitorProfile(name string) (string, *dbus.Error) {
	return s.svc.GetMonitorProfile(name), nil
}

func (s *Server) SetMonitorProfile(name, path string) (bool, *dbus.Error) {
	return s.svc.SetMonitorProfile(name, path), nil
}

func (s *Server) ListProfiles() ([]string, *dbus.Error) {
	return s.svc.ListProfiles(), nil
}

func (s *Server) ListDisplayProfiles() ([]string, *dbus.Error) {
	return s.svc.ListDisplayProfiles(), nil
}

func (s *Server) GetProfilePath(name string) (string, *dbus.Error) {
	return s.svc.GetProfilePath(name), nil
}

func (s *Server) InstallProfile(path string) (bool, *dbus.Error) {
	return s.svc.InstallProfile(path), nil
}

func (s *Server) IsHdrSupported() (bool, *dbus.Error) {
	return s.svc.IsHdrSupported(), nil
}

func (s *Server) IsHdrActive(name string) (bool, *dbus.Error) {
	return s.svc.IsHdrActive(name), nil
}

func (s *Server) EnableHdr(name string) (bool, *dbus.Error) {
	return s.svc.EnableHdr(name), nil
}

func (s *Server) DisableHdr(name string) (bool, *dbus.Error) {
	return s.svc.DisableHdr(name), nil
}

func (s *Server) GetOcioConfig() (string, *dbus.Error) {
	return s.svc.GetOcioConfig(), nil
}

func (s *Server) SetOcioConfig(path string) (bool, *dbus.Error) {
	return s.svc.SetOcioConfig(path), nil
}

func (s *Server) ListOcioColorSpaces() ([]string, *dbus.Error) {
	return s.svc.ListOcioColorSpaces(), nil
}

func (s *Server) ListWorkflows() ([]string, *dbus.Error) {
	return s.svc.ListWorkflows(), nil
}

// GetWorkflowConfig returns the workflow serialized as
// (working_space, ocio_config, default_intent, soft_proof_profile).
func (s *Server) GetWorkflowConfig(name string) (string, string, string, string, *dbus.Error) {
	wf, ok := s.svc.GetWorkflowConfig(name)
	if !ok {
		return "", "", "", "", dbus.MakeFailedError(models.ErrNotFound("unknown workflow: " + name))
	}
	return wf.WorkingSpace, wf.OcioConfig, wf.DefaultIntent.String(), wf.SoftProofProfile, nil
}

func (s *Server) Refresh() (bool, *dbus.Error) {
	return s.svc.Refresh(), nil
}

func (s *Server) GetVersion() (string, *dbus.Error) {
	return models.Version, nil
}

func (s *Server) introspectXML() string {
	node := &introspect.Node{
		Name: objectPath,
		Interfaces: []introspect.Interface{
			introspect.IntrospectData,
			{
				Name:    interfaceName,
				Methods: introspect.Methods(s),
			},
		},
	}
	return string(introspect.NewIntrospectable(node))
}
