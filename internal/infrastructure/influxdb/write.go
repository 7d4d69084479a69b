package influxdb

import (
	"time"

	"github.com/influxdata/influxdb-client-go/v2/api/write"
)

// WritePropertyValue records the committed value of one device property.
//
// Called after a successful device write or load so property history can
// be graphed and audited. The write is non-blocking; data is batched and
// sent asynchronously.
//
// Parameters:
//   - address: Device address (e.g., "1a.2b.3c")
//   - property: Property name (e.g., "on_level", "ramp_rate")
//   - value: The committed numeric value
//
// Example:
//
//	client.WritePropertyValue("1a.2b.3c", "on_level", 255)
func (c *Client) WritePropertyValue(address, property string, value float64) {
	if !c.IsConnected() {
		return
	}

	point := write.NewPoint(
		"device_properties",
		map[string]string{
			"address":  address,
			"property": property,
		},
		map[string]interface{}{
			"value": value,
		},
		time.Now(),
	)

	c.writeAPI.WritePoint(point)
}

// WriteCommandLatency records how long a device configuration operation
// took, tagged by operation kind ("write", "load").
//
// Parameters:
//   - address: Device address
//   - operation: Operation kind
//   - duration: Wall time the operation took
func (c *Client) WriteCommandLatency(address, operation string, duration time.Duration) {
	if !c.IsConnected() {
		return
	}

	point := write.NewPoint(
		"command_latency",
		map[string]string{
			"address":   address,
			"operation": operation,
		},
		map[string]interface{}{
			"duration_ms": float64(duration.Milliseconds()),
		},
		time.Now(),
	)

	c.writeAPI.WritePoint(point)
}

// WritePoint writes a custom point with full control over tags and fields.
//
// Use this for measurements that don't fit the helper methods.
func (c *Client) WritePoint(measurement string, tags map[string]string, fields map[string]interface{}) {
	if !c.IsConnected() {
		return
	}

	point := write.NewPoint(measurement, tags, fields, time.Now())
	c.writeAPI.WritePoint(point)
}
