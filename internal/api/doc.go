// Package api implements the HTTP REST API and WebSocket server for Insteon Link.
//
// This package provides:
//   - REST endpoints for device records and property enumeration/mutation
//   - WebSocket hub for property commands and change broadcasts
//   - Middleware stack (request ID, logging, recovery, CORS)
//   - TLS support for production deployments
//
// # Architecture
//
// The API server sits between front-end UIs and the device registry.
// Property reads and edits are staged in memory on the registry's devices;
// a write command commits the staged values and a load command re-reads
// the device over the modem. Mutations are broadcast to subscribed
// WebSocket clients and published on MQTT for other services.
//
// # Command dispatch
//
// WebSocket command messages are processed on the connection's read loop,
// so commands from one client are naturally serialised. Devices are not
// safe for concurrent mutation; UIs edit one device's properties from one
// connection at a time, matching how the property panel is used.
//
// # Graceful Degradation
//
// The server operates without MQTT or InfluxDB — property operations work,
// only cross-service event publishing and telemetry are skipped.
package api
