//go:build linux

package ddc

import (
	"context"
	"fmt"
	"sync"
	"time"
	"unsafe"

	"golang.org/x/sys/unix"
	"golang.org/x/time/rate"
)

// DDC/CI constants. The display responds at 7-bit address 0x37; packet
// source/destination bytes use the 8-bit conventions from VESA DDC/CI.
const (
	ddcAddr     = 0x37
	ddcHostAddr = 0x51 // host "source address" byte
	ddcDestSeed = 0x6E // 8-bit destination, seeds the checksum
	ddcSrcSeed  = 0x50 // seed for reply verification

	opGetVCP      = 0x01
	opGetVCPReply = 0x02
	opSetVCP      = 0x03

	// DDC/CI requires a settling delay between a request and its reply,
	// and at least 50ms between transactions.
	replyDelay   = 40 * time.Millisecond
	maxOpsPerSec = 20
)

const (
	i2cRdwrIOCTL = 0x0707 // I2C_RDWR ioctl: combined transactions
	i2cMsgRD     = 0x0001 // i2c_msg flag: read direction
)

// i2cMsg mirrors struct i2c_msg from linux/i2c.h
type i2cMsg struct {
	addr   uint16
	flags  uint16
	length uint16
	_pad   uint16 // struct alignment
	buf    uintptr
}

// i2cRdwr mirrors struct i2c_rdwr_ioctl_data from linux/i2c-dev.h
type i2cRdwr struct {
	msgs  uintptr
	nmsgs uint32
}

// Driver is the real DDC/CI control for one monitor, speaking raw I2C_RDWR
// ioctl transactions on a /dev/i2c-N bus.
type Driver struct {
	mu      sync.Mutex
	fd      int
	limiter *rate.Limiter
}

// Open opens the i2c-dev bus behind the given display connector.
func Open(devPath string) (*Driver, error) {
	fd, err := unix.Open(devPath, unix.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("ddc: open %s: %w", devPath, err)
	}
	return &Driver{
		fd:      fd,
		limiter: rate.NewLimiter(rate.Limit(maxOpsPerSec), 1),
	}, nil
}

// Close releases the bus fd.
func (d *Driver) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.fd < 0 {
		return nil
	}
	err := unix.Close(d.fd)
	d.fd = -1
	return err
}

// GetVCP reads a VCP feature: write a Get VCP request, wait the mandated
// settling delay, then read the 11-byte reply.
func (d *Driver) GetVCP(ctx context.Context, feature byte) (uint16, uint16, error) {
	if err := d.limiter.Wait(ctx); err != nil {
		return 0, 0, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.fd < 0 {
		return 0, 0, fmt.Errorf("ddc: driver closed")
	}

	// Request: source, length|0x80, opcode, feature, checksum.
	req := []byte{ddcHostAddr, 0x82, opGetVCP, feature}
	req = append(req, checksum(ddcDestSeed, req))
	if err := d.write(req); err != nil {
		return 0, 0, err
	}

	time.Sleep(replyDelay)

	reply := make([]byte, 11)
	if err := d.read(reply); err != nil {
		return 0, 0, err
	}

	// Reply layout: src, len|0x80, 0x02, result, feature, type, maxHi,
	// maxLo, curHi, curLo, checksum.
	if reply[2] != opGetVCPReply || reply[4] != feature {
		return 0, 0, fmt.Errorf("ddc: unexpected VCP reply for feature 0x%02x", feature)
	}
	if reply[3] != 0 {
		return 0, 0, fmt.Errorf("ddc: display rejected VCP feature 0x%02x", feature)
	}
	max := uint16(reply[6])<<8 | uint16(reply[7])
	cur := uint16(reply[8])<<8 | uint16(reply[9])
	return cur, max, nil
}

// SetVCP writes a VCP feature value.
func (d *Driver) SetVCP(ctx context.Context, feature byte, value uint16) error {
	if err := d.limiter.Wait(ctx); err != nil {
		return err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.fd < 0 {
		return fmt.Errorf("ddc: driver closed")
	}

	req := []byte{ddcHostAddr, 0x84, opSetVCP, feature, byte(value >> 8), byte(value)}
	req = append(req, checksum(ddcDestSeed, req))
	return d.write(req)
}

func (d *Driver) write(data []byte) error {
	msg := i2cMsg{
		addr:   ddcAddr,
		length: uint16(len(data)),
		buf:    uintptr(unsafe.Pointer(&data[0])),
	}
	rdwr := i2cRdwr{msgs: uintptr(unsafe.Pointer(&msg)), nmsgs: 1}
	if _, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(d.fd), i2cRdwrIOCTL, uintptr(unsafe.Pointer(&rdwr))); errno != 0 {
		return fmt.Errorf("ddc: I2C_RDWR write: %w", errno)
	}
	return nil
}

func (d *Driver) read(buf []byte) error {
	msg := i2cMsg{
		addr:   ddcAddr,
		flags:  i2cMsgRD,
		length: uint16(len(buf)),
		buf:    uintptr(unsafe.Pointer(&buf[0])),
	}
	rdwr := i2cRdwr{msgs: uintptr(unsafe.Pointer(&msg)), nmsgs: 1}
	if _, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(d.fd), i2cRdwrIOCTL, uintptr(unsafe.Pointer(&rdwr))); errno != 0 {
		return fmt.Errorf("ddc: I2C_RDWR read: %w", errno)
	}
	return nil
}

var _ Control = (*Driver)(nil)
