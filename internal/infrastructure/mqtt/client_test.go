package mqtt

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/nerrad567/gray-logic-insteon/internal/infrastructure/config"
)

func TestTopics(t *testing.T) {
	topics := Topics{}

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"device properties", topics.DeviceProperties("1a.2b.3c"), "insteon/device/1a.2b.3c/properties"},
		{"event", topics.Event("properties_changed"), "insteon/event/properties_changed"},
		{"system status", topics.SystemStatus(), "insteon/system/status"},
		{"all device properties", topics.AllDeviceProperties(), "insteon/device/+/properties"},
		{"all events", topics.AllEvents(), "insteon/event/+"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestBuildClientOptions(t *testing.T) {
	cfg := config.MQTTConfig{
		Broker: config.MQTTBrokerConfig{
			Host:     "broker.local",
			Port:     1883,
			ClientID: "insteon-link-test",
		},
		Auth: config.MQTTAuthConfig{
			Username: "user",
			Password: "pass",
		},
		QoS: 1,
		Reconnect: config.MQTTReconnectConfig{
			InitialDelay: 1,
			MaxDelay:     60,
		},
	}

	opts := buildClientOptions(cfg)

	if len(opts.Servers) != 1 {
		t.Fatalf("len(Servers) = %d, want 1", len(opts.Servers))
	}
	if got := opts.Servers[0].String(); got != "tcp://broker.local:1883" {
		t.Errorf("broker URL = %q, want tcp://broker.local:1883", got)
	}
	if opts.ClientID != "insteon-link-test" {
		t.Errorf("ClientID = %q, want insteon-link-test", opts.ClientID)
	}
	if opts.Username != "user" {
		t.Errorf("Username = %q, want user", opts.Username)
	}
}

func TestBuildClientOptions_TLS(t *testing.T) {
	cfg := config.MQTTConfig{
		Broker: config.MQTTBrokerConfig{
			Host:     "broker.local",
			Port:     8883,
			TLS:      true,
			ClientID: "insteon-link-test",
		},
	}

	opts := buildClientOptions(cfg)

	if got := opts.Servers[0].Scheme; got != "ssl" {
		t.Errorf("scheme = %q, want ssl", got)
	}
	if opts.TLSConfig == nil {
		t.Fatal("TLSConfig is nil, want configured")
	}
}

func TestStatusPayloads(t *testing.T) {
	for name, payload := range map[string]string{
		"online":  buildOnlinePayload("insteon-link"),
		"offline": buildOfflinePayload("insteon-link"),
	} {
		t.Run(name, func(t *testing.T) {
			var msg map[string]string
			if err := json.Unmarshal([]byte(payload), &msg); err != nil {
				t.Fatalf("payload is not valid JSON: %v", err)
			}
			if msg["status"] != name {
				t.Errorf("status = %q, want %q", msg["status"], name)
			}
			if msg["client_id"] != "insteon-link" {
				t.Errorf("client_id = %q, want insteon-link", msg["client_id"])
			}
		})
	}
}

func TestPublish_Validation(t *testing.T) {
	c := &Client{}

	t.Run("empty topic", func(t *testing.T) {
		if err := c.Publish("", []byte("x"), 1, false); err != ErrInvalidTopic {
			t.Errorf("Publish() error = %v, want ErrInvalidTopic", err)
		}
	})

	t.Run("invalid qos", func(t *testing.T) {
		if err := c.Publish("insteon/event/x", []byte("x"), 3, false); err != ErrInvalidQoS {
			t.Errorf("Publish() error = %v, want ErrInvalidQoS", err)
		}
	})

	t.Run("oversized payload", func(t *testing.T) {
		big := strings.Repeat("x", maxPayloadSize+1)
		err := c.Publish("insteon/event/x", []byte(big), 1, false)
		if err == nil || !strings.Contains(err.Error(), "exceeds maximum") {
			t.Errorf("Publish() error = %v, want payload size error", err)
		}
	})
}
