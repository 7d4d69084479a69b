package insteon

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

// DeviceRecord is the persisted identity of a known device. The in-memory
// Device (flags, properties, buttons) is rebuilt from the record's kind
// at load time; staged edits are never persisted.
type DeviceRecord struct {
	Address   string    `json:"address"`
	Name      string    `json:"name"`
	Kind      Kind      `json:"kind"`
	Firmware  string    `json:"firmware,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NormalizeAddress lowercases an Insteon address and validates its
// aa.bb.cc hex form.
func NormalizeAddress(address string) (string, error) {
	addr := strings.ToLower(strings.TrimSpace(address))
	parts := strings.Split(addr, ".")
	if len(parts) != 3 {
		return "", fmt.Errorf("%w: %q", ErrInvalidAddress, address)
	}
	for _, part := range parts {
		if len(part) != 2 {
			return "", fmt.Errorf("%w: %q", ErrInvalidAddress, address)
		}
		for _, c := range part {
			if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
				return "", fmt.Errorf("%w: %q", ErrInvalidAddress, address)
			}
		}
	}
	return addr, nil
}

// Repository defines persistence for device records. The abstraction
// allows SQLite in production and mocks in tests.
type Repository interface {
	// GetByAddress retrieves a record by device address.
	// Returns ErrDeviceNotFound if no record exists.
	GetByAddress(ctx context.Context, address string) (*DeviceRecord, error)

	// List retrieves all records ordered by name.
	List(ctx context.Context) ([]DeviceRecord, error)

	// Create inserts a new record.
	// Returns ErrDeviceExists if the address is already registered.
	Create(ctx context.Context, rec *DeviceRecord) error

	// Update modifies an existing record.
	// Returns ErrDeviceNotFound if no record exists.
	Update(ctx context.Context, rec *DeviceRecord) error

	// Delete removes a record by address.
	// Returns ErrDeviceNotFound if no record exists.
	Delete(ctx context.Context, address string) error
}

// SQLiteRepository implements Repository using SQLite.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository creates a SQLite-backed repository over an open
// connection.
func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// GetByAddress retrieves a record by device address.
func (r *SQLiteRepository) GetByAddress(ctx context.Context, address string) (*DeviceRecord, error) {
	query := `
		SELECT address, name, kind, firmware, created_at, updated_at
		FROM insteon_devices
		WHERE address = ?`

	rec, err := scanRecord(r.db.QueryRowContext(ctx, query, address))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrDeviceNotFound
		}
		return nil, fmt.Errorf("querying device by address: %w", err)
	}
	return rec, nil
}

// List retrieves all records ordered by name.
func (r *SQLiteRepository) List(ctx context.Context) ([]DeviceRecord, error) {
	query := `
		SELECT address, name, kind, firmware, created_at, updated_at
		FROM insteon_devices
		ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing devices: %w", err)
	}
	defer rows.Close() //nolint:errcheck // read-only iteration

	var records []DeviceRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning device row: %w", err)
		}
		records = append(records, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating device rows: %w", err)
	}
	return records, nil
}

// Create inserts a new record.
func (r *SQLiteRepository) Create(ctx context.Context, rec *DeviceRecord) error {
	now := time.Now().UTC()
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = now
	}
	rec.UpdatedAt = now

	query := `
		INSERT INTO insteon_devices (address, name, kind, firmware, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		rec.Address, rec.Name, string(rec.Kind), rec.Firmware,
		rec.CreatedAt.Format(time.RFC3339), rec.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return ErrDeviceExists
		}
		return fmt.Errorf("inserting device: %w", err)
	}
	return nil
}

// Update modifies an existing record.
func (r *SQLiteRepository) Update(ctx context.Context, rec *DeviceRecord) error {
	rec.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE insteon_devices
		SET name = ?, kind = ?, firmware = ?, updated_at = ?
		WHERE address = ?`

	result, err := r.db.ExecContext(ctx, query,
		rec.Name, string(rec.Kind), rec.Firmware,
		rec.UpdatedAt.Format(time.RFC3339), rec.Address,
	)
	if err != nil {
		return fmt.Errorf("updating device: %w", err)
	}
	return requireRow(result)
}

// Delete removes a record by address.
func (r *SQLiteRepository) Delete(ctx context.Context, address string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM insteon_devices WHERE address = ?`, address)
	if err != nil {
		return fmt.Errorf("deleting device: %w", err)
	}
	return requireRow(result)
}

// requireRow converts a zero-rows-affected result into ErrDeviceNotFound.
func requireRow(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if n == 0 {
		return ErrDeviceNotFound
	}
	return nil
}

// rowScanner abstracts *sql.Row and *sql.Rows for scanRecord.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanRecord reads one device record from a row.
func scanRecord(row rowScanner) (*DeviceRecord, error) {
	var (
		rec                  DeviceRecord
		kind                 string
		createdAt, updatedAt string
	)
	if err := row.Scan(&rec.Address, &rec.Name, &kind, &rec.Firmware, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	rec.Kind = Kind(kind)

	var err error
	if rec.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if rec.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &rec, nil
}
