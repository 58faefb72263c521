// Package cache adds a Redis read-through layer in front of a
// repository.Repository. Single-record lookups are cached; lists are always
// read from the store. Updates and deletes drop the cached record and bump a
// per-record generation that guards later cache writes.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"semaphore/masterdata/internal/model"
	"semaphore/masterdata/internal/repository"
)

const keyPrefix = "masterdata"

const generationTTL = 24 * time.Hour

type Repository struct {
	repository.Repository
	client *redis.Client
	ttl    time.Duration
	log    zerolog.Logger
}

var _ repository.Repository = (*Repository)(nil)

func New(next repository.Repository, client *redis.Client, ttl time.Duration, log zerolog.Logger) *Repository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &Repository{
		Repository: next,
		client:     client,
		ttl:        ttl,
		log:        log.With().Str("component", "cache").Logger(),
	}
}

// NewClient connects to Redis and checks the connection.
func NewClient(ctx context.Context, addr, password string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, err
	}
	return client, nil
}

func key(entity string, id int32) string {
	return fmt.Sprintf("%s:%s:%d", keyPrefix, entity, id)
}

// Uncached returns the wrapped store. Callers that read a row in order to
// write it back use it so a stale cached copy never reaches the store.
func (r *Repository) Uncached() repository.Repository {
	return r.Repository
}

// Ping checks both the cache and the wrapped store.
func (r *Repository) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis: %w", err)
	}
	return r.Repository.Ping(ctx)
}

func (r *Repository) GetTeacher(ctx context.Context, id int32) (model.Teacher, error) {
	return readThrough(ctx, r, key("guru", id), func() (model.Teacher, error) {
		return r.Repository.GetTeacher(ctx, id)
	})
}

func (r *Repository) UpdateTeacher(ctx context.Context, teacher model.Teacher) (model.Teacher, error) {
	defer r.invalidate(ctx, key("guru", teacher.ID))
	return r.Repository.UpdateTeacher(ctx, teacher)
}

func (r *Repository) DeleteTeacher(ctx context.Context, id int32) error {
	defer r.invalidate(ctx, key("guru", id))
	return r.Repository.DeleteTeacher(ctx, id)
}

func (r *Repository) GetClass(ctx context.Context, id int32) (model.Class, error) {
	return readThrough(ctx, r, key("kelas", id), func() (model.Class, error) {
		return r.Repository.GetClass(ctx, id)
	})
}

func (r *Repository) UpdateClass(ctx context.Context, class model.Class) (model.Class, error) {
	defer r.invalidate(ctx, key("kelas", class.ID))
	return r.Repository.UpdateClass(ctx, class)
}

func (r *Repository) DeleteClass(ctx context.Context, id int32) error {
	defer r.invalidate(ctx, key("kelas", id))
	return r.Repository.DeleteClass(ctx, id)
}

func (r *Repository) GetSubject(ctx context.Context, id int32) (model.Subject, error) {
	return readThrough(ctx, r, key("mapel", id), func() (model.Subject, error) {
		return r.Repository.GetSubject(ctx, id)
	})
}

func (r *Repository) UpdateSubject(ctx context.Context, subject model.Subject) (model.Subject, error) {
	defer r.invalidate(ctx, key("mapel", subject.ID))
	return r.Repository.UpdateSubject(ctx, subject)
}

func (r *Repository) DeleteSubject(ctx context.Context, id int32) error {
	defer r.invalidate(ctx, key("mapel", id))
	return r.Repository.DeleteSubject(ctx, id)
}

func (r *Repository) GetStudent(ctx context.Context, id int32) (model.Student, error) {
	return readThrough(ctx, r, key("student", id), func() (model.Student, error) {
		return r.Repository.GetStudent(ctx, id)
	})
}

func (r *Repository) UpdateStudent(ctx context.Context, student model.Student) (model.Student, error) {
	defer r.invalidate(ctx, key("student", student.ID))
	return r.Repository.UpdateStudent(ctx, student)
}

func (r *Repository) DeleteStudent(ctx context.Context, id int32) error {
	defer r.invalidate(ctx, key("student", id))
	return r.Repository.DeleteStudent(ctx, id)
}

// readThrough serves key from Redis, falling back to load on a miss. Redis
// failures are logged and never fail the request.
//
// Every invalidation bumps a generation counter for the key. The loaded value
// is only stored if the counter still holds the value read before load, so a
// row fetched before a concurrent update or delete is never cached after it.
func readThrough[T any](ctx context.Context, r *Repository, key string, load func() (T, error)) (T, error) {
	raw, err := r.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var cached T
		if err := json.Unmarshal(raw, &cached); err == nil {
			return cached, nil
		}
		r.log.Warn().Str("key", key).Msg("discarding undecodable cache entry")
	case !errors.Is(err, redis.Nil):
		r.log.Warn().Err(err).Str("key", key).Msg("cache read failed")
	}

	gen, genErr := generation(ctx, r.client, key)
	value, err := load()
	if err != nil {
		return value, err
	}
	if genErr != nil {
		return value, nil
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return value, nil
	}
	if err := r.store(ctx, key, gen, payload); err != nil {
		if errors.Is(err, errStale) || errors.Is(err, redis.TxFailedErr) {
			r.log.Debug().Str("key", key).Msg("skipping cache write for invalidated entry")
		} else {
			r.log.Warn().Err(err).Str("key", key).Msg("cache write failed")
		}
	}
	return value, nil
}

var errStale = errors.New("cache entry invalidated during load")

func genKey(key string) string {
	return key + ":gen"
}

type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func generation(ctx context.Context, c getter, key string) (int64, error) {
	gen, err := c.Get(ctx, genKey(key)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

// store sets key to payload if its generation is still gen.
func (r *Repository) store(ctx context.Context, key string, gen int64, payload []byte) error {
	return r.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := generation(ctx, tx, key)
		if err != nil {
			return err
		}
		if current != gen {
			return errStale
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, payload, r.ttl)
			return nil
		})
		return err
	}, genKey(key))
}

// invalidate drops key and bumps its generation. The counter outlives the
// entry so loads that started before the bump cannot repopulate it.
func (r *Repository) invalidate(ctx context.Context, key string) {
	ctx = context.WithoutCancel(ctx)
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, genKey(key))
		pipe.Expire(ctx, genKey(key), generationTTL)
		pipe.Del(ctx, key)
		return nil
	})
	if err != nil {
		r.log.Warn().Err(err).Str("key", key).Msg("cache invalidation failed")
	}
}
