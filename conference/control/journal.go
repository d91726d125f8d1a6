package control

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/spf13/viper"

	"github.com/imtaco/xms-confctl/internal/errors"
	redisstream "github.com/imtaco/xms-confctl/internal/stream/redis"
)

// Entry is the audit record of one processed job.
type Entry struct {
	ID      string
	Name    string
	Data    map[string]string
	Outcome string
	Waited  time.Duration
	At      time.Time
}

// Journal receives an entry after every processed job. It is write-only;
// nothing reads it back into the session.
type Journal interface {
	Record(ctx context.Context, e Entry) error
}

type JournalConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Stream  string `mapstructure:"stream" validate:"required_if=Enabled true"`
	MaxLen  int64  `mapstructure:"max_len" validate:"gte=0"`
}

func SetupJournal(v *viper.Viper, prefix string) {
	p := func(key string) string { return prefix + "." + key }

	v.SetDefault(p("enabled"), false)
	v.SetDefault(p("stream"), "xms-confctl:journal")
	v.SetDefault(p("max_len"), 10000)
}

// StreamJournal appends entries to a Redis stream.
type StreamJournal struct {
	producer redisstream.Producer
}

func NewStreamJournal(producer redisstream.Producer) *StreamJournal {
	return &StreamJournal{producer: producer}
}

func (j *StreamJournal) Record(ctx context.Context, e Entry) error {
	data, err := json.Marshal(e.Data)
	if err != nil {
		return errors.Wrap(redisstream.ErrInvalidArgument, err, "marshal event data")
	}
	_, err = j.producer.Add(ctx, map[string]any{
		"id":        e.ID,
		"name":      e.Name,
		"data":      string(data),
		"outcome":   e.Outcome,
		"waited_ms": strconv.FormatInt(e.Waited.Milliseconds(), 10),
		"at":        e.At.UTC().Format(time.RFC3339Nano),
	})
	return err
}
