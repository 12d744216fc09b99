package store

import (
	"context"
	"encoding/json"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/barber-client/internal/models"
)

const (
	sessionKey     = "barber:session"
	sessionChannel = "barber:session:changes"
)

// Redis persists the session in a shared Redis instance. Every save and
// clear is published on a channel, so other processes holding the same
// session observe the change — the storage-event sync between tabs, done
// with pub/sub.
type Redis struct {
	rdb    *redis.Client
	disp   *dispatcher
	log    zerolog.Logger
	cancel context.CancelFunc
}

func NewRedis(addr string, db int, log zerolog.Logger) *Redis {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   db,
	})

	ctx, cancel := context.WithCancel(context.Background())

	s := &Redis{
		rdb:    rdb,
		disp:   newDispatcher(log),
		log:    log,
		cancel: cancel,
	}

	go s.listen(ctx)
	return s
}

func (s *Redis) listen(ctx context.Context) {
	sub := s.rdb.Subscribe(ctx, sessionChannel)
	defer sub.Close()

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-sub.Channel():
			if !ok {
				return
			}
			if msg.Payload == "" {
				s.disp.dispatch(Change{})
				continue
			}

			var sess models.Session
			if err := json.Unmarshal([]byte(msg.Payload), &sess); err != nil {
				s.log.Warn().Err(err).Msg("undecodable session change event")
				continue
			}
			s.disp.dispatch(Change{Session: &sess})
		}
	}
}

func (s *Redis) Save(ctx context.Context, sess models.Session) error {
	payload, err := json.Marshal(sess)
	if err != nil {
		return err
	}

	if err := s.rdb.Set(ctx, sessionKey, payload, 0).Err(); err != nil {
		return err
	}

	return s.rdb.Publish(ctx, sessionChannel, payload).Err()
}

func (s *Redis) Load(ctx context.Context) (*models.Session, error) {
	payload, err := s.rdb.Get(ctx, sessionKey).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var sess models.Session
	if err := json.Unmarshal([]byte(payload), &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *Redis) Clear(ctx context.Context) error {
	if err := s.rdb.Del(ctx, sessionKey).Err(); err != nil {
		return err
	}
	return s.rdb.Publish(ctx, sessionChannel, "").Err()
}

func (s *Redis) Subscribe() <-chan Change {
	return s.disp.subscribe()
}

func (s *Redis) Close() error {
	s.cancel()
	s.disp.close()
	return s.rdb.Close()
}
