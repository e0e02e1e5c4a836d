// Package preview simulates desktop, tablet and mobile viewports for the
// read-only preview surface.
package preview

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/rs/zerolog/log"

	"github.com/codr1/careerbuilder/internal/storage"
)

type Device string

const (
	Desktop Device = "desktop"
	Tablet  Device = "tablet"
	Mobile  Device = "mobile"

	DefaultDevice = Desktop

	// QueryParam carries the device in shareable preview URLs.
	QueryParam = "device"
)

var ErrUnknownDevice = errors.New("unknown preview device")

var Devices = []Device{Desktop, Tablet, Mobile}

func (d Device) Valid() bool {
	switch d {
	case Desktop, Tablet, Mobile:
		return true
	}
	return false
}

// ParseDevice returns the device named by s, or DefaultDevice.
func ParseDevice(s string) Device {
	if d := Device(s); d.Valid() {
		return d
	}
	return DefaultDevice
}

// LookupDevice is the strict form of ParseDevice.
func LookupDevice(s string) (Device, error) {
	if d := Device(s); d.Valid() {
		return d, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDevice, s)
}

// Metrics are the layout constants a simulated device imposes.
type Metrics struct {
	FrameWidth string
	Padding    int
	Gap        int
	FontSize   int
}

func MetricsFor(d Device) Metrics {
	switch d {
	case Tablet:
		return Metrics{FrameWidth: "768px", Padding: 32, Gap: 24, FontSize: 15}
	case Mobile:
		return Metrics{FrameWidth: "375px", Padding: 16, Gap: 16, FontSize: 14}
	default:
		return Metrics{FrameWidth: "100%", Padding: 48, Gap: 32, FontSize: 16}
	}
}

// DeviceContext holds one browser session's simulated device.
//
// Resolution order on Init: DefaultDevice, then the session-stored value, then
// the URL device parameter. A later Select overrides all three.
type DeviceContext struct {
	session storage.Store
	device  Device
}

func NewDeviceContext(session storage.Store) *DeviceContext {
	return &DeviceContext{session: session, device: DefaultDevice}
}

// Init resolves the device for an initial page load. A device parameter in
// query wins over the stored value and is persisted; an invalid one resolves
// to DefaultDevice.
func (c *DeviceContext) Init(ctx context.Context, query url.Values) (Device, error) {
	c.device = DefaultDevice

	stored, ok, err := c.session.Get(ctx, storage.KeyPreviewDevice)
	if err != nil {
		return c.device, fmt.Errorf("read preview device: %w", err)
	}
	if ok {
		c.device = ParseDevice(stored)
	}

	if query.Has(QueryParam) {
		requested := query.Get(QueryParam)
		c.device = ParseDevice(requested)
		if !Device(requested).Valid() {
			log.Ctx(ctx).Debug().Str("device", requested).Msg("Unknown preview device, using default")
		}
		if err := c.session.Set(ctx, storage.KeyPreviewDevice, string(c.device)); err != nil {
			return c.device, fmt.Errorf("store preview device: %w", err)
		}
	}
	return c.device, nil
}

func (c *DeviceContext) Device() Device {
	return c.device
}

// Select stores d for the session and returns base with its device query
// parameter set, the URL that reproduces this preview.
func (c *DeviceContext) Select(ctx context.Context, d Device, base *url.URL) (string, error) {
	if !d.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownDevice, d)
	}
	if err := c.session.Set(ctx, storage.KeyPreviewDevice, string(d)); err != nil {
		return "", fmt.Errorf("store preview device: %w", err)
	}
	c.device = d
	return ShareURL(base, d), nil
}

// Reset forgets the stored device.
func (c *DeviceContext) Reset(ctx context.Context) error {
	c.device = DefaultDevice
	if err := c.session.Remove(ctx, storage.KeyPreviewDevice); err != nil {
		return fmt.Errorf("reset preview device: %w", err)
	}
	return nil
}

// ShareURL returns base with the device query parameter replaced.
func ShareURL(base *url.URL, d Device) string {
	u := url.URL{Path: "/preview"}
	if base != nil {
		u = *base
	}
	q := u.Query()
	q.Set(QueryParam, string(d))
	u.RawQuery = q.Encode()
	return u.String()
}
