package api

import (
	"context"
	"encoding/json"
	"time"

	"github.com/nerrad567/gray-logic-insteon/internal/infrastructure/mqtt"
	"github.com/nerrad567/gray-logic-insteon/internal/insteon"
	"github.com/nerrad567/gray-logic-insteon/internal/properties"
)

// Command names accepted over the WebSocket channel.
const (
	CmdPropertiesGet    = "properties/get"
	CmdPropertiesChange = "properties/change"
	CmdPropertiesWrite  = "properties/write"
	CmdPropertiesLoad   = "properties/load"
	CmdPropertiesReset  = "properties/reset"
)

// WSChannelPropertiesChanged is the broadcast channel for property mutations.
const WSChannelPropertiesChanged = "device.properties_changed"

// CommandPayload is the payload of a properties/* command message.
type CommandPayload struct {
	DeviceAddress string `json:"device_address"`
	Name          string `json:"name,omitempty"`
	Value         any    `json:"value,omitempty"`
}

// commandError carries a machine-readable error code back to the client.
type commandError struct {
	Code    string
	Message string
}

// dispatchCommand executes one properties/* command against the registry.
//
// Commands arrive on a connection's read loop, so edits to one device from
// one client are serialised; concurrent edits from different connections to
// the same device are not supported (see package doc).
func (s *Server) dispatchCommand(ctx context.Context, cmd string, p CommandPayload) (any, *commandError) {
	dev, err := s.registry.Get(p.DeviceAddress)
	if err != nil {
		return nil, &commandError{Code: ErrCodeDeviceNotFound, Message: "device not found: " + p.DeviceAddress}
	}

	switch cmd {
	case CmdPropertiesGet:
		rows, schema := properties.Enumerate(properties.Wrap(dev))
		return map[string]any{"properties": rows, "schema": schema}, nil

	case CmdPropertiesChange:
		if p.Name == "" {
			return nil, &commandError{Code: ErrCodeBadRequest, Message: "name is required"}
		}
		properties.Apply(properties.Wrap(dev), p.Name, p.Value)
		s.notifyPropertiesChanged(dev, "change")
		return map[string]any{"ok": true}, nil

	case CmdPropertiesWrite:
		start := time.Now()
		dev.CommitPending()
		s.recordLatency(dev.Address(), "write", time.Since(start))
		s.recordCommittedValues(dev)
		s.publishSnapshot(dev)
		s.notifyPropertiesChanged(dev, "write")
		return map[string]any{"ok": true}, nil

	case CmdPropertiesLoad:
		start := time.Now()
		if err := dev.LoadConfig(ctx); err != nil {
			s.logger.Error("device config load failed", "address", dev.Address(), "error", err)
			return nil, &commandError{Code: ErrCodeInternal, Message: "device load failed"}
		}
		s.recordLatency(dev.Address(), "load", time.Since(start))
		s.publishSnapshot(dev)
		s.notifyPropertiesChanged(dev, "load")
		return map[string]any{"ok": true}, nil

	case CmdPropertiesReset:
		dev.ResetPending()
		s.notifyPropertiesChanged(dev, "reset")
		return map[string]any{"ok": true}, nil

	default:
		return nil, &commandError{Code: ErrCodeBadRequest, Message: "unknown command: " + cmd}
	}
}

// notifyPropertiesChanged fans a mutation out to WebSocket subscribers and
// the MQTT event topic. The broadcast carries a fresh enumeration so UIs
// can re-render without a follow-up get.
func (s *Server) notifyPropertiesChanged(dev *insteon.Device, operation string) {
	rows, schema := properties.Enumerate(properties.Wrap(dev))

	payload := map[string]any{
		"device_address": dev.Address(),
		"operation":      operation,
		"properties":     rows,
		"schema":         schema,
	}

	if s.hub != nil {
		s.hub.Broadcast(WSChannelPropertiesChanged, payload)
	}

	if s.mqtt != nil {
		event := map[string]any{
			"device_address": dev.Address(),
			"operation":      operation,
			"timestamp":      time.Now().UTC().Format(time.RFC3339),
		}
		data, err := json.Marshal(event)
		if err != nil {
			return
		}
		topic := mqtt.Topics{}.Event("properties_changed")
		if err := s.mqtt.Publish(topic, data, 1, false); err != nil {
			s.logger.Warn("mqtt event publish failed", "topic", topic, "error", err)
		}
	}
}

// publishSnapshot publishes the device's current enumeration as a retained
// MQTT message so late subscribers see the committed state.
func (s *Server) publishSnapshot(dev *insteon.Device) {
	if s.mqtt == nil {
		return
	}

	rows, schema := properties.Enumerate(properties.Wrap(dev))
	data, err := json.Marshal(map[string]any{
		"device_address": dev.Address(),
		"properties":     rows,
		"schema":         schema,
	})
	if err != nil {
		return
	}

	topic := mqtt.Topics{}.DeviceProperties(dev.Address())
	if err := s.mqtt.PublishRetained(topic, data); err != nil {
		s.logger.Warn("mqtt snapshot publish failed", "topic", topic, "error", err)
	}
}

// recordLatency writes command timing telemetry.
func (s *Server) recordLatency(address, operation string, d time.Duration) {
	if s.tsdb == nil {
		return
	}
	s.tsdb.WriteCommandLatency(address, operation, d)
}

// recordCommittedValues writes the device's committed property values to
// the time-series store after a successful write.
func (s *Server) recordCommittedValues(dev *insteon.Device) {
	if s.tsdb == nil {
		return
	}

	flags := dev.OperatingFlags()
	for _, name := range flags.Names() {
		if v, ok := flags.Get(name).Value().(bool); ok {
			val := 0.0
			if v {
				val = 1.0
			}
			s.tsdb.WritePropertyValue(dev.Address(), name, val)
		}
	}

	ext := dev.ExtendedProperties()
	for _, name := range ext.Names() {
		if v, ok := ext.Get(name).Value().(int); ok {
			s.tsdb.WritePropertyValue(dev.Address(), name, float64(v))
		}
	}
}
