package mech

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/mechbay-api/internal/entities/equipment"
	"github.com/KirkDiggler/mechbay-api/internal/errors"
	"github.com/KirkDiggler/mechbay-api/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/mechbay-api/internal/redis"
)

const (
	mechKeyPrefix    = "mech:"
	ownerIndexPrefix = "mech:owner:"

	// Error messages
	errMechNil     = "mech cannot be nil"
	errMechIDEmpty = "mech ID cannot be empty"
	errOwnerEmpty  = "owner ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis mech repository.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed mech repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Mech == nil {
		return nil, errors.InvalidArgument(errMechNil)
	}
	if input.Mech.ID == "" {
		return nil, errors.InvalidArgument(errMechIDEmpty)
	}
	if input.Mech.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerEmpty)
	}

	key := mechKeyPrefix + input.Mech.ID
	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("mech with ID %s already exists", input.Mech.ID)
	}

	mech := input.Mech.Copy()
	mech.Normalize()
	now := r.clock.Now().Unix()
	mech.CreatedAt = now
	mech.UpdatedAt = now

	data, err := json.Marshal(mech)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal mech data")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.SAdd(ctx, ownerIndexPrefix+mech.OwnerID, mech.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create mech")
	}

	slog.DebugContext(ctx, "created mech",
		"mech_id", mech.ID,
		"owner_id", mech.OwnerID,
		"mech_key", mech.MechID)

	return &CreateOutput{Mech: mech}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errMechIDEmpty)
	}

	result, err := r.client.Get(ctx, mechKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("mech with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get mech")
	}

	var mech equipment.Mech
	if err := json.Unmarshal([]byte(result), &mech); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal mech data")
	}
	mech.Normalize()

	return &GetOutput{Mech: &mech}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Mech == nil {
		return nil, errors.InvalidArgument(errMechNil)
	}
	if input.Mech.ID == "" {
		return nil, errors.InvalidArgument(errMechIDEmpty)
	}

	existing, err := r.Get(ctx, GetInput{ID: input.Mech.ID})
	if err != nil {
		return nil, err
	}
	if existing.Mech.OwnerID != input.Mech.OwnerID {
		return nil, errors.FailedPreconditionf("mech %s cannot change owner in place", input.Mech.ID)
	}

	mech := input.Mech.Copy()
	mech.Normalize()
	mech.CreatedAt = existing.Mech.CreatedAt
	mech.UpdatedAt = r.clock.Now().Unix()

	data, err := json.Marshal(mech)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal mech data")
	}

	if err := r.client.Set(ctx, mechKeyPrefix+mech.ID, data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to update mech %s", mech.ID)
	}

	return &UpdateOutput{Mech: mech}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errMechIDEmpty)
	}

	existing, err := r.Get(ctx, GetInput(input))
	if err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, mechKeyPrefix+input.ID)
	pipe.SRem(ctx, ownerIndexPrefix+existing.Mech.OwnerID, input.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete mech")
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) ListByOwner(ctx context.Context, input ListByOwnerInput) (*ListByOwnerOutput, error) {
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerEmpty)
	}

	indexKey := ownerIndexPrefix + input.OwnerID
	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get mechs from index %s", indexKey)
	}

	mechs := make([]*equipment.Mech, 0, len(ids))
	for _, id := range ids {
		out, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			if errors.IsNotFound(err) {
				slog.WarnContext(ctx, "mech not found, cleaning up index",
					"mech_id", id,
					"index_key", indexKey)
				if err := r.client.SRem(ctx, indexKey, id).Err(); err != nil {
					slog.WarnContext(ctx, "failed to clean up mech index",
						"mech_id", id,
						"index_key", indexKey,
						"error", err)
				}
				continue
			}
			return nil, errors.Wrapf(err, "failed to get mech %s", id)
		}
		mechs = append(mechs, out.Mech)
	}

	sort.Slice(mechs, func(i, j int) bool {
		return mechs[i].ID < mechs[j].ID
	})

	return &ListByOwnerOutput{Mechs: mechs}, nil
}
