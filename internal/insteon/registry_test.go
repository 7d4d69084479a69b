package insteon

import (
	"context"
	"errors"
	"sync"
	"testing"
)

// MockRepository is a test implementation of Repository.
type MockRepository struct {
	mu      sync.Mutex
	records map[string]*DeviceRecord
	// For testing error paths
	createErr error
	deleteErr error
}

func NewMockRepository() *MockRepository {
	return &MockRepository{records: make(map[string]*DeviceRecord)}
}

func (m *MockRepository) GetByAddress(_ context.Context, address string) (*DeviceRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if rec, ok := m.records[address]; ok {
		copy := *rec
		return &copy, nil
	}
	return nil, ErrDeviceNotFound
}

func (m *MockRepository) List(_ context.Context) ([]DeviceRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	records := make([]DeviceRecord, 0, len(m.records))
	for _, rec := range m.records {
		records = append(records, *rec)
	}
	return records, nil
}

func (m *MockRepository) Create(_ context.Context, rec *DeviceRecord) error {
	if m.createErr != nil {
		return m.createErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.records[rec.Address]; exists {
		return ErrDeviceExists
	}
	copy := *rec
	m.records[rec.Address] = &copy
	return nil
}

func (m *MockRepository) Update(_ context.Context, rec *DeviceRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.records[rec.Address]; !exists {
		return ErrDeviceNotFound
	}
	copy := *rec
	m.records[rec.Address] = &copy
	return nil
}

func (m *MockRepository) Delete(_ context.Context, address string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.records[address]; !exists {
		return ErrDeviceNotFound
	}
	delete(m.records, address)
	return nil
}

// addRecord adds a record directly to the mock for test setup.
func (m *MockRepository) addRecord(rec *DeviceRecord) {
	m.mu.Lock()
	defer m.mu.Unlock()
	copy := *rec
	m.records[rec.Address] = &copy
}

func TestRegistry_Load(t *testing.T) {
	repo := NewMockRepository()
	registry := NewRegistry(repo)
	ctx := context.Background()

	repo.addRecord(&DeviceRecord{Address: "1a.2b.3c", Name: "Kitchen", Kind: KindKeypad8})
	repo.addRecord(&DeviceRecord{Address: "aa.bb.cc", Name: "Hall", Kind: KindDimmer})
	repo.addRecord(&DeviceRecord{Address: "11.22.33", Name: "Mystery", Kind: Kind("toaster")})

	if err := registry.Load(ctx); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	// The unknown kind is skipped, not fatal.
	if got := registry.Count(); got != 2 {
		t.Errorf("Count() = %d, want 2", got)
	}
}

func TestRegistry_Get(t *testing.T) {
	repo := NewMockRepository()
	registry := NewRegistry(repo)
	ctx := context.Background()

	repo.addRecord(&DeviceRecord{Address: "1a.2b.3c", Name: "Kitchen", Kind: KindKeypad8})
	if err := registry.Load(ctx); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	t.Run("normalizes the address", func(t *testing.T) {
		dev, err := registry.Get("1A.2B.3C")
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if dev.Address() != "1a.2b.3c" {
			t.Errorf("Address() = %q, want %q", dev.Address(), "1a.2b.3c")
		}
	})

	t.Run("returns the shared instance", func(t *testing.T) {
		first, err := registry.Get("1a.2b.3c")
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		first.SetRadioButtons([]int{1, 2})

		second, err := registry.Get("1a.2b.3c")
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if got := second.DirtyCount(); got == 0 {
			t.Error("DirtyCount() = 0, want staged edits visible on repeat lookup")
		}
	})

	t.Run("unknown address", func(t *testing.T) {
		_, err := registry.Get("99.99.99")
		if !errors.Is(err, ErrDeviceNotFound) {
			t.Errorf("Get() error = %v, want ErrDeviceNotFound", err)
		}
	})

	t.Run("malformed address", func(t *testing.T) {
		_, err := registry.Get("not-an-address")
		if !errors.Is(err, ErrInvalidAddress) {
			t.Errorf("Get() error = %v, want ErrInvalidAddress", err)
		}
	})
}

func TestRegistry_Add(t *testing.T) {
	repo := NewMockRepository()
	registry := NewRegistry(repo)
	ctx := context.Background()

	t.Run("persists and registers", func(t *testing.T) {
		dev, err := registry.Add(ctx, &DeviceRecord{Address: "AA.BB.CC", Name: "Porch", Kind: KindSwitch})
		if err != nil {
			t.Fatalf("Add() error = %v", err)
		}
		if dev.Address() != "aa.bb.cc" {
			t.Errorf("Address() = %q, want normalized %q", dev.Address(), "aa.bb.cc")
		}
		if _, err := repo.GetByAddress(ctx, "aa.bb.cc"); err != nil {
			t.Errorf("record not persisted: %v", err)
		}
	})

	t.Run("duplicate address", func(t *testing.T) {
		_, err := registry.Add(ctx, &DeviceRecord{Address: "aa.bb.cc", Name: "Again", Kind: KindSwitch})
		if !errors.Is(err, ErrDeviceExists) {
			t.Errorf("Add() error = %v, want ErrDeviceExists", err)
		}
	})

	t.Run("unknown kind is rejected before persisting", func(t *testing.T) {
		_, err := registry.Add(ctx, &DeviceRecord{Address: "12.34.56", Name: "Odd", Kind: Kind("toaster")})
		if !errors.Is(err, ErrUnknownKind) {
			t.Errorf("Add() error = %v, want ErrUnknownKind", err)
		}
		if _, err := repo.GetByAddress(ctx, "12.34.56"); !errors.Is(err, ErrDeviceNotFound) {
			t.Error("record persisted despite invalid kind")
		}
	})
}

func TestRegistry_Remove(t *testing.T) {
	repo := NewMockRepository()
	registry := NewRegistry(repo)
	ctx := context.Background()

	repo.addRecord(&DeviceRecord{Address: "1a.2b.3c", Name: "Kitchen", Kind: KindKeypad8})
	if err := registry.Load(ctx); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if err := registry.Remove(ctx, "1A.2B.3C"); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if got := registry.Count(); got != 0 {
		t.Errorf("Count() = %d, want 0", got)
	}
	if err := registry.Remove(ctx, "1a.2b.3c"); !errors.Is(err, ErrDeviceNotFound) {
		t.Errorf("Remove() error = %v, want ErrDeviceNotFound", err)
	}
}

func TestNormalizeAddress(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"1A.2B.3C", "1a.2b.3c", false},
		{" aa.bb.cc ", "aa.bb.cc", false},
		{"11.22.33", "11.22.33", false},
		{"112233", "", true},
		{"1a.2b", "", true},
		{"1a.2b.3g", "", true},
		{"1a.2b.3c.4d", "", true},
	}
	for _, tt := range tests {
		got, err := NormalizeAddress(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("NormalizeAddress(%q) error = nil, want ErrInvalidAddress", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("NormalizeAddress(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("NormalizeAddress(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
