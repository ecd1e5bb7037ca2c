package models

import "time"

// EventKind identifies what changed in the service.
type EventKind string

const (
	EventRefresh        EventKind = "refresh"
	EventConfigChanged  EventKind = "config_changed"
	EventProfileChanged EventKind = "profile_changed"
	EventHdrChanged     EventKind = "hdr_changed"
	EventOcioChanged    EventKind = "ocio_changed"
)

// Event is a service change notification delivered to SSE subscribers.
type Event struct {
	Kind    EventKind `json:"kind"`
	Monitor string    `json:"monitor,omitempty"`
	Detail  string    `json:"detail,omitempty"`
	Time    time.Time `json:"time"`
}

// Info is the daemon information response.
type Info struct {
	Version      string `json:"version"`
	Monitors     int    `json:"monitors"`
	Profiles     int    `json:"profiles"`
	HdrSupported bool   `json:"hdr_supported"`
	OcioConfig   string `json:"ocio_config,omitempty"`
}

// Version is the daemon version reported over HTTP and D-Bus.
const Version = "0.3.0"
