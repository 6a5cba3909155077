package analytics

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"lotview/internal/platform/logger"
)

// Message is the JSON payload published for every event
type Message struct {
	Name       string         `json:"name"`
	Params     map[string]any `json:"params"`
	ReportedAt time.Time      `json:"reported_at"`
}

// NATSSink publishes events to "<prefix>.<name>" subjects.
type NATSSink struct {
	conn   *nats.Conn
	prefix string
	log    logger.Logger
	now    func() time.Time
}

func NewNATSSink(url, prefix string, log logger.Logger) (*NATSSink, error) {
	nc, err := nats.Connect(url,
		nats.Name("lotview"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("connecting to NATS at %s: %w", url, err)
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &NATSSink{conn: nc, prefix: prefix, log: log.With("component", "analytics"), now: time.Now}, nil
}

// Subject returns the subject an event is published on
func (s *NATSSink) Subject(name string) string {
	if s.prefix == "" {
		return name
	}
	return s.prefix + "." + name
}

func (s *NATSSink) ReportEvent(name string, params map[string]any) {
	data, err := json.Marshal(Message{Name: name, Params: params, ReportedAt: s.now().UTC()})
	if err != nil {
		s.log.Warnf("marshaling analytics event %s: %v", name, err)
		return
	}
	if err := s.conn.Publish(s.Subject(name), data); err != nil {
		s.log.Warnf("publishing analytics event %s: %v", name, err)
	}
}

// Close flushes pending events and closes the connection
func (s *NATSSink) Close() error {
	if err := s.conn.FlushTimeout(2 * time.Second); err != nil {
		s.log.Warnf("flushing analytics: %v", err)
	}
	s.conn.Close()
	return nil
}
