package broker_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"

	"github.com/smoralesusma/olsoftware-dashboard/internal/entity"
	"github.com/smoralesusma/olsoftware-dashboard/pkg/broker"
)

func TestProducer_WithoutBrokers(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	p := broker.NewProducer(l, nil, "olsoftware.users")
	defer p.Close()

	id := uuid.Must(uuid.NewV4())

	p.PublishRecordEvent(context.Background(), entity.RecordEvent{
		Type:   entity.RecordCreated,
		Record: entity.Record{ID: id, Email: "a@example.com"},
		Actor:  "admin@example.com",
		At:     time.Now(),
	})

	require.Contains(t, buf.String(), "record event")
	require.Contains(t, buf.String(), id.String())
}
