package colorimeter

import (
	"errors"
	"io"
	"strings"
	"testing"
	"time"
)

// fakePort scripts one reply line per command written.
type fakePort struct {
	replies map[string]string
	reader  io.Reader
	closed  bool
}

func (f *fakePort) Write(p []byte) (int, error) {
	cmd := strings.TrimSpace(string(p))
	reply, ok := f.replies[cmd]
	if !ok {
		return 0, errors.New("unexpected command: " + cmd)
	}
	f.reader = strings.NewReader(reply + "\n")
	return len(p), nil
}

func (f *fakePort) Read(p []byte) (int, error) {
	if f.reader == nil {
		return 0, io.EOF
	}
	return f.reader.Read(p)
}

func (f *fakePort) SetReadTimeout(time.Duration) error { return nil }
func (f *fakePort) Close() error                       { f.closed = true; return nil }

func withFakePort(t *testing.T, replies map[string]string) *fakePort {
	t.Helper()
	fp := &fakePort{replies: replies}
	orig := openPort
	openPort = func(string) (port, error) { return fp, nil }
	t.Cleanup(func() { openPort = orig })
	return fp
}

func TestIdentify(t *testing.T) {
	withFakePort(t, map[string]string{"*IDN?": "i1 Display Pro rev B"})

	d, err := Open("")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer d.Close()

	id, err := d.Identify()
	if err != nil {
		t.Fatalf("Identify: %v", err)
	}
	if id != "i1 Display Pro rev B" {
		t.Errorf("id = %q", id)
	}
}

func TestMeasureXYZ(t *testing.T) {
	withFakePort(t, map[string]string{"MEAS": "95.047 100.0 108.883"})

	d, err := Open("/dev/ttyUSB1")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer d.Close()

	xyz, err := d.MeasureXYZ()
	if err != nil {
		t.Fatalf("MeasureXYZ: %v", err)
	}
	if xyz.Y != 100.0 {
		t.Errorf("Y = %v, want 100", xyz.Y)
	}
}

func TestMeasureXYZBadReply(t *testing.T) {
	withFakePort(t, map[string]string{"MEAS": "ERR low light"})

	d, err := Open("")
	if err != nil {
		t.Fatal(err)
	}
	defer d.Close()

	if _, err := d.MeasureXYZ(); err == nil {
		t.Error("expected error for unparsable reply")
	}
}

func TestOpenFailure(t *testing.T) {
	orig := openPort
	openPort = func(string) (port, error) { return nil, errors.New("no such device") }
	t.Cleanup(func() { openPort = orig })

	if _, err := Open(""); err == nil {
		t.Error("expected error when the port cannot be opened")
	}
}

func TestCloseReleasesPort(t *testing.T) {
	fp := withFakePort(t, nil)
	d, err := Open("")
	if err != nil {
		t.Fatal(err)
	}
	if err := d.Close(); err != nil {
		t.Fatal(err)
	}
	if !fp.closed {
		t.Error("underlying port not closed")
	}
}
