package redis

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/imtaco/xms-confctl/internal/errors"
	"github.com/imtaco/xms-confctl/internal/log"
)

const (
	ErrInvalidArgument errors.Code = "invalid producer argument"
	ErrAddFailed       errors.Code = "stream add failed"
)

type Producer interface {
	// Add appends values to the stream and returns the entry id.
	Add(ctx context.Context, values map[string]any) (string, error)
}

type producerImpl struct {
	client *redis.Client
	stream string
	maxLen int64
	logger *log.Logger
}

// NewProducer appends to stream, trimming it to roughly maxLen entries
// (maxLen <= 0 disables trimming).
func NewProducer(
	client *redis.Client,
	stream string,
	maxLen int64,
	logger *log.Logger,
) (Producer, error) {
	if client == nil {
		return nil, errors.New(ErrInvalidArgument, "redis client is required")
	}
	if stream == "" {
		return nil, errors.New(ErrInvalidArgument, "stream name is required")
	}
	if logger == nil {
		return nil, errors.New(ErrInvalidArgument, "logger is required")
	}

	return &producerImpl{
		client: client,
		stream: stream,
		maxLen: maxLen,
		logger: logger,
	}, nil
}

func (sp *producerImpl) Add(ctx context.Context, values map[string]any) (string, error) {
	args := &redis.XAddArgs{
		Stream: sp.stream,
		Values: values,
	}
	if sp.maxLen > 0 {
		args.MaxLen = sp.maxLen
		args.Approx = true
	}

	id, err := sp.client.XAdd(ctx, args).Result()
	if err != nil {
		return "", errors.Wrapf(ErrAddFailed, err, "xadd %s", sp.stream)
	}

	sp.logger.Debug("added stream entry",
		log.String("stream", sp.stream),
		log.String("id", id))
	return id, nil
}
