// Package publisher broadcasts vehicle position updates to subscribers.
package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/UnknownOlympus/olhovivo/internal/metrics"
	"github.com/UnknownOlympus/olhovivo/internal/models"
	"github.com/nats-io/nats.go"
)

// DefaultPrefix is used when no subject prefix is configured.
const DefaultPrefix = "olhovivo.positions"

// Conn is the part of *nats.Conn the publisher needs.
type Conn interface {
	Publish(subj string, data []byte) error
	Drain() error
	Close()
}

// PositionMessage is the JSON payload published for every stored position.
type PositionMessage struct {
	ID        int64     `json:"id"`
	VehicleID int64     `json:"vehicleId"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Timestamp time.Time `json:"timestamp"`
}

type NATSPublisher struct {
	conn    Conn
	prefix  string
	log     *slog.Logger
	metrics *metrics.Metrics
	now     func() time.Time
}

// Connect dials the NATS server at url and keeps the connection gauge current.
func Connect(url, prefix string, log *slog.Logger, m *metrics.Metrics) (*NATSPublisher, error) {
	conn, err := nats.Connect(url,
		nats.Name("olhovivo-api"),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			m.BrokerConnected.Set(0)
			log.Warn("NATS disconnected", "error", err)
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			m.BrokerConnected.Set(1)
			log.Info("NATS reconnected", "url", nc.ConnectedUrl())
		}),
		nats.ClosedHandler(func(_ *nats.Conn) {
			m.BrokerConnected.Set(0)
			log.Info("NATS connection closed")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	m.BrokerConnected.Set(1)

	return NewNATSPublisher(conn, prefix, log, m), nil
}

// NewNATSPublisher publishes on subjects "<prefix>.<vehicleId>".
func NewNATSPublisher(conn Conn, prefix string, log *slog.Logger, m *metrics.Metrics) *NATSPublisher {
	prefix = strings.Trim(strings.TrimSpace(prefix), ".")
	if prefix == "" {
		prefix = DefaultPrefix
	}

	return &NATSPublisher{conn: conn, prefix: prefix, log: log, metrics: m, now: time.Now}
}

func (p *NATSPublisher) PublishPosition(ctx context.Context, pos models.VehiclePosition) error {
	payload, err := json.Marshal(PositionMessage{
		ID:        pos.ID,
		VehicleID: pos.VehicleID,
		Latitude:  pos.Latitude,
		Longitude: pos.Longitude,
		Timestamp: p.now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to encode position: %w", err)
	}

	subject := Subject(p.prefix, pos.VehicleID)

	start := time.Now()
	err = p.conn.Publish(subject, payload)
	p.metrics.PublishSeconds.Observe(time.Since(start).Seconds())
	if err != nil {
		p.metrics.PositionsPublish.WithLabelValues("error").Inc()
		return fmt.Errorf("failed to publish position to %s: %w", subject, err)
	}
	p.metrics.PositionsPublish.WithLabelValues("success").Inc()

	p.log.DebugContext(ctx, "Position published", "subject", subject, "position_id", pos.ID)

	return nil
}

// Close drains the connection, which closes it once buffered messages are flushed.
// The connection is closed right away when draining cannot start.
func (p *NATSPublisher) Close() {
	if err := p.conn.Drain(); err != nil {
		p.log.Error("failed to drain NATS connection", "error", err)
		p.conn.Close()
	}
}

// Subject builds the subject positions of vehicleID are published on.
func Subject(prefix string, vehicleID int64) string {
	return prefix + "." + strconv.FormatInt(vehicleID, 10)
}

// Noop discards positions. It is used when no broker is configured.
type Noop struct{}

func (Noop) PublishPosition(context.Context, models.VehiclePosition) error { return nil }

func (Noop) Close() {}
