package mqtt

import "fmt"

// Topic prefixes. All topics use the scheme insteon/{category}/...
const (
	// TopicPrefix is the base for all Insteon Link topics.
	TopicPrefix = "insteon"

	// TopicPrefixSystem is the base for system topics.
	TopicPrefixSystem = "insteon/system"
)

// Topics provides builders for Insteon Link MQTT topics.
// Using these helpers ensures consistent topic naming across the codebase.
//
//	topics := mqtt.Topics{}
//	topic := topics.DeviceProperties("1a.2b.3c")
//	// Returns: "insteon/device/1a.2b.3c/properties"
type Topics struct{}

// DeviceProperties returns the retained topic carrying a device's current
// property snapshot. Published after a successful device write or load.
//
// Example: insteon/device/1a.2b.3c/properties
func (Topics) DeviceProperties(address string) string {
	return fmt.Sprintf("%s/device/%s/properties", TopicPrefix, address)
}

// Event returns the topic for property lifecycle events.
//
// Example: insteon/event/properties_changed
func (Topics) Event(eventType string) string {
	return fmt.Sprintf("%s/event/%s", TopicPrefix, eventType)
}

// SystemStatus returns the system status topic, also used for the LWT.
//
// Example: insteon/system/status
func (Topics) SystemStatus() string {
	return fmt.Sprintf("%s/status", TopicPrefixSystem)
}

// AllDeviceProperties returns a pattern matching every device's property
// snapshot topic.
//
// Pattern: insteon/device/+/properties
func (Topics) AllDeviceProperties() string {
	return fmt.Sprintf("%s/device/+/properties", TopicPrefix)
}

// AllEvents returns a pattern matching all event topics.
//
// Pattern: insteon/event/+
func (Topics) AllEvents() string {
	return fmt.Sprintf("%s/event/+", TopicPrefix)
}
