// Package mqtt provides MQTT client connectivity for Insteon Link.
//
// This package manages:
//   - Connection to the broker with auto-reconnect
//   - Message publishing with QoS guarantees
//   - Last Will and Testament (LWT) for offline detection
//   - Connection health monitoring
//
// # Architecture
//
// Insteon Link publishes device property events onto the site message
// bus so other services (dashboards, automation engines) can react to
// configuration changes without polling the HTTP API.
//
//	Insteon Link → MQTT Broker → Consumers
//
// # Security Considerations
//
//   - TLS is required for production deployments (cfg.Broker.TLS=true)
//   - Credentials are validated against broker ACL
//   - Anonymous access is only for local development
//
// # Usage
//
//	client, err := mqtt.Connect(cfg.MQTT)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	topic := mqtt.Topics{}.DeviceProperties("1a.2b.3c")
//	client.Publish(topic, payload, 1, true)
package mqtt
