// Package colorimeter reads tristimulus measurements from a serial
// measurement device, for calibration clients that need real patch
// readings. Absence of a device is a normal condition, never fatal.
package colorimeter

import (
	"bufio"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go.bug.st/serial"

	"github.com/chromad/chromad/internal/models"
)

// DefaultPort is where USB colorimeters typically enumerate.
const DefaultPort = "/dev/ttyUSB0"

const readTimeout = 5 * time.Second

// port is the subset of serial.Port the device uses, split out so tests can
// substitute an in-memory pipe.
type port interface {
	Read(p []byte) (int, error)
	Write(p []byte) (int, error)
	SetReadTimeout(t time.Duration) error
	Close() error
}

// openPort is a variable so tests can inject a fake device.
var openPort = func(name string) (port, error) {
	mode := &serial.Mode{
		BaudRate: 115200,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}
	return serial.Open(name, mode)
}

// Device is one open measurement instrument.
type Device struct {
	portName string
	p        port
	r        *bufio.Reader
}

// Open connects to the instrument on the given serial port.
func Open(portName string) (*Device, error) {
	if portName == "" {
		portName = DefaultPort
	}
	p, err := openPort(portName)
	if err != nil {
		return nil, fmt.Errorf("colorimeter: open %s: %w", portName, err)
	}
	if err := p.SetReadTimeout(readTimeout); err != nil {
		p.Close()
		return nil, fmt.Errorf("colorimeter: set timeout: %w", err)
	}
	return &Device{portName: portName, p: p, r: bufio.NewReader(p)}, nil
}

// Close releases the serial port.
func (d *Device) Close() error {
	return d.p.Close()
}

// Identify asks the instrument for its identification string.
func (d *Device) Identify() (string, error) {
	if err := d.send("*IDN?"); err != nil {
		return "", err
	}
	line, err := d.readLine()
	if err != nil {
		return "", err
	}
	return line, nil
}

// MeasureXYZ triggers a measurement of the currently displayed patch and
// returns the reading as CIE XYZ. The instrument replies with three
// whitespace-separated decimal values.
func (d *Device) MeasureXYZ() (models.XYZ, error) {
	if err := d.send("MEAS"); err != nil {
		return models.XYZ{}, err
	}
	line, err := d.readLine()
	if err != nil {
		return models.XYZ{}, err
	}

	var xyz models.XYZ
	if _, err := fmt.Sscanf(line, "%f %f %f", &xyz.X, &xyz.Y, &xyz.Z); err != nil {
		return models.XYZ{}, fmt.Errorf("colorimeter: bad reading %q: %w", line, err)
	}
	slog.Debug("colorimeter: measured patch", "port", d.portName, "x", xyz.X, "y", xyz.Y, "z", xyz.Z)
	return xyz, nil
}

func (d *Device) send(cmd string) error {
	if _, err := d.p.Write([]byte(cmd + "\n")); err != nil {
		return fmt.Errorf("colorimeter: write: %w", err)
	}
	return nil
}

func (d *Device) readLine() (string, error) {
	line, err := d.r.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("colorimeter: read: %w", err)
	}
	return strings.TrimSpace(line), nil
}
