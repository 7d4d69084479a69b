package insteon

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// Logger defines the logging interface used by the Registry, allowing
// different logging implementations to be plugged in.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

// Registry holds the live in-memory devices keyed by address, built from
// the repository's records at startup. Unlike the records, the devices
// are stateful (staged edits live on them), so lookups return the shared
// instance rather than a copy; callers must serialise mutation per
// device, which the API dispatcher provides.
type Registry struct {
	repo    Repository
	mu      sync.RWMutex
	devices map[string]*Device
	logger  Logger
}

// NewRegistry creates a registry over the given repository.
func NewRegistry(repo Repository) *Registry {
	return &Registry{
		repo:    repo,
		devices: make(map[string]*Device),
		logger:  noopLogger{},
	}
}

// SetLogger sets the logger for the registry.
func (r *Registry) SetLogger(logger Logger) {
	r.logger = logger
}

// Load builds the in-memory device set from the repository. Records with
// an unknown kind are skipped with a warning rather than failing startup.
func (r *Registry) Load(ctx context.Context) error {
	records, err := r.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("loading device records: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.devices = make(map[string]*Device, len(records))
	for _, rec := range records {
		dev, err := NewDevice(rec.Address, rec.Name, rec.Kind)
		if err != nil {
			r.logger.Warn("skipping device record", "address", rec.Address, "error", err)
			continue
		}
		r.devices[rec.Address] = dev
	}

	r.logger.Info("device registry loaded", "count", len(r.devices))
	return nil
}

// Get returns the device at the given address.
// Returns ErrDeviceNotFound if the address is unknown.
func (r *Registry) Get(address string) (*Device, error) {
	addr, err := NormalizeAddress(address)
	if err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	dev, ok := r.devices[addr]
	if !ok {
		return nil, ErrDeviceNotFound
	}
	return dev, nil
}

// List returns all devices ordered by address.
func (r *Registry) List() []*Device {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Device, 0, len(r.devices))
	for _, d := range r.devices {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].address < out[j].address })
	return out
}

// Count returns the number of registered devices.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.devices)
}

// Add persists a new device record and registers the built device.
func (r *Registry) Add(ctx context.Context, rec *DeviceRecord) (*Device, error) {
	addr, err := NormalizeAddress(rec.Address)
	if err != nil {
		return nil, err
	}
	rec.Address = addr

	dev, err := NewDevice(rec.Address, rec.Name, rec.Kind)
	if err != nil {
		return nil, err
	}

	if err := r.repo.Create(ctx, rec); err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.devices[rec.Address] = dev
	r.mu.Unlock()

	r.logger.Info("device added", "address", rec.Address, "kind", rec.Kind)
	return dev, nil
}

// Remove deletes a device record and drops the in-memory device.
func (r *Registry) Remove(ctx context.Context, address string) error {
	addr, err := NormalizeAddress(address)
	if err != nil {
		return err
	}

	if err := r.repo.Delete(ctx, addr); err != nil {
		return err
	}

	r.mu.Lock()
	delete(r.devices, addr)
	r.mu.Unlock()

	r.logger.Info("device removed", "address", addr)
	return nil
}
