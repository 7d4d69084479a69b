package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/nerrad567/gray-logic-insteon/internal/insteon"
	"github.com/nerrad567/gray-logic-insteon/internal/properties"
)

// deviceSummary is the REST representation of a registered device.
type deviceSummary struct {
	Address string `json:"address"`
	Name    string `json:"name"`
	Kind    string `json:"kind"`
	Buttons int    `json:"buttons"`
	Dirty   int    `json:"dirty"`
}

func summarize(d *insteon.Device) deviceSummary {
	return deviceSummary{
		Address: d.Address(),
		Name:    d.Name(),
		Kind:    string(d.Kind()),
		Buttons: len(d.Buttons()),
		Dirty:   d.DirtyCount(),
	}
}

// handleListDevices returns all registered devices ordered by address.
func (s *Server) handleListDevices(w http.ResponseWriter, _ *http.Request) {
	devs := s.registry.List()
	out := make([]deviceSummary, 0, len(devs))
	for _, d := range devs {
		out = append(out, summarize(d))
	}
	writeJSON(w, http.StatusOK, map[string]any{"devices": out, "count": len(out)})
}

// handleCreateDevice registers a new device record.
func (s *Server) handleCreateDevice(w http.ResponseWriter, r *http.Request) {
	var rec insteon.DeviceRecord
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	dev, err := s.registry.Add(r.Context(), &rec)
	if err != nil {
		switch {
		case errors.Is(err, insteon.ErrDeviceExists):
			writeConflict(w, "device already exists: "+rec.Address)
		case errors.Is(err, insteon.ErrInvalidAddress), errors.Is(err, insteon.ErrUnknownKind):
			writeBadRequest(w, err.Error())
		default:
			writeInternalError(w, "failed to create device")
		}
		return
	}

	writeJSON(w, http.StatusCreated, summarize(dev))
}

// handleGetDevice returns a single device by address.
func (s *Server) handleGetDevice(w http.ResponseWriter, r *http.Request) {
	dev, err := s.getDevice(w, r)
	if err != nil {
		return
	}
	writeJSON(w, http.StatusOK, summarize(dev))
}

// handleDeleteDevice removes a device record.
func (s *Server) handleDeleteDevice(w http.ResponseWriter, r *http.Request) {
	address := chi.URLParam(r, "address")
	if err := s.registry.Remove(r.Context(), address); err != nil {
		switch {
		case errors.Is(err, insteon.ErrDeviceNotFound):
			writeDeviceNotFound(w)
		case errors.Is(err, insteon.ErrInvalidAddress):
			writeBadRequest(w, err.Error())
		default:
			writeInternalError(w, "failed to delete device")
		}
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

// handleGetProperties enumerates a device's UI-facing properties and schema.
func (s *Server) handleGetProperties(w http.ResponseWriter, r *http.Request) {
	dev, err := s.getDevice(w, r)
	if err != nil {
		return
	}

	rows, schema := properties.Enumerate(properties.Wrap(dev))
	writeJSON(w, http.StatusOK, map[string]any{
		"device_address": dev.Address(),
		"properties":     rows,
		"schema":         schema,
	})
}

// changeRequest is the POST body for a property change.
type changeRequest struct {
	Name  string `json:"name"`
	Value any    `json:"value"`
}

// handleChangeProperty stages one property edit on a device.
func (s *Server) handleChangeProperty(w http.ResponseWriter, r *http.Request) {
	dev, err := s.getDevice(w, r)
	if err != nil {
		return
	}

	var req changeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}
	if req.Name == "" {
		writeBadRequest(w, "name is required")
		return
	}

	properties.Apply(properties.Wrap(dev), req.Name, req.Value)
	s.notifyPropertiesChanged(dev, "change")
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "dirty": dev.DirtyCount()})
}

// handleWriteProperties commits all staged edits on a device.
func (s *Server) handleWriteProperties(w http.ResponseWriter, r *http.Request) {
	dev, err := s.getDevice(w, r)
	if err != nil {
		return
	}

	start := time.Now()
	dev.CommitPending()
	s.recordLatency(dev.Address(), "write", time.Since(start))
	s.recordCommittedValues(dev)
	s.publishSnapshot(dev)
	s.notifyPropertiesChanged(dev, "write")
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

// handleLoadProperties re-reads a device's configuration from hardware.
func (s *Server) handleLoadProperties(w http.ResponseWriter, r *http.Request) {
	dev, err := s.getDevice(w, r)
	if err != nil {
		return
	}

	start := time.Now()
	if err := dev.LoadConfig(r.Context()); err != nil {
		s.logger.Error("device config load failed", "address", dev.Address(), "error", err)
		writeInternalError(w, "device load failed")
		return
	}
	s.recordLatency(dev.Address(), "load", time.Since(start))
	s.publishSnapshot(dev)
	s.notifyPropertiesChanged(dev, "load")
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

// handleResetProperties discards all staged edits on a device.
func (s *Server) handleResetProperties(w http.ResponseWriter, r *http.Request) {
	dev, err := s.getDevice(w, r)
	if err != nil {
		return
	}

	dev.ResetPending()
	s.notifyPropertiesChanged(dev, "reset")
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

// getDevice resolves the {address} URL parameter to a device, writing the
// error response itself when the lookup fails.
func (s *Server) getDevice(w http.ResponseWriter, r *http.Request) (*insteon.Device, error) {
	address := chi.URLParam(r, "address")
	dev, err := s.registry.Get(address)
	if err != nil {
		if errors.Is(err, insteon.ErrInvalidAddress) {
			writeBadRequest(w, err.Error())
			return nil, err
		}
		writeDeviceNotFound(w)
		return nil, err
	}
	return dev, nil
}
