package item

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
	itemKeyPrefix    = "item:"
	ownerIndexPrefix = "item:owner:"

	// Error messages
	errItemNil     = "item cannot be nil"
	errItemIDEmpty = "item ID cannot be empty"
	errOwnerEmpty  = "owner ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis item repository.
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

// NewRedis creates a new Redis-backed item repository
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
	if input.Item == nil {
		return nil, errors.InvalidArgument(errItemNil)
	}
	if input.Item.ID == "" {
		return nil, errors.InvalidArgument(errItemIDEmpty)
	}
	if input.Item.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerEmpty)
	}

	key := itemKeyPrefix + input.Item.ID
	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("item with ID %s already exists", input.Item.ID)
	}

	item := *input.Item
	item.Normalize()
	now := r.clock.Now().Unix()
	item.CreatedAt = now
	item.UpdatedAt = now

	data, err := json.Marshal(&item)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal item data")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.SAdd(ctx, ownerIndexPrefix+item.OwnerID, item.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create item")
	}

	return &CreateOutput{Item: &item}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errItemIDEmpty)
	}

	result, err := r.client.Get(ctx, itemKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("item with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get item")
	}

	var item equipment.Item
	if err := json.Unmarshal([]byte(result), &item); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal item data")
	}
	item.Normalize()

	return &GetOutput{Item: &item}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Item == nil {
		return nil, errors.InvalidArgument(errItemNil)
	}
	if input.Item.ID == "" {
		return nil, errors.InvalidArgument(errItemIDEmpty)
	}

	existing, err := r.Get(ctx, GetInput{ID: input.Item.ID})
	if err != nil {
		return nil, err
	}
	if existing.Item.OwnerID != input.Item.OwnerID {
		return nil, errors.FailedPreconditionf("item %s cannot change owner in place", input.Item.ID)
	}

	item := *input.Item
	item.Normalize()
	item.CreatedAt = existing.Item.CreatedAt
	item.UpdatedAt = r.clock.Now().Unix()

	data, err := json.Marshal(&item)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal item data")
	}

	if err := r.client.Set(ctx, itemKeyPrefix+item.ID, data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to update item %s", item.ID)
	}

	return &UpdateOutput{Item: &item}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errItemIDEmpty)
	}

	existing, err := r.Get(ctx, GetInput(input))
	if err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, itemKeyPrefix+input.ID)
	pipe.SRem(ctx, ownerIndexPrefix+existing.Item.OwnerID, input.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete item")
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
		return nil, errors.Wrapf(err, "failed to get items from index %s", indexKey)
	}

	items := make([]*equipment.Item, 0, len(ids))
	for _, id := range ids {
		out, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			if errors.IsNotFound(err) {
				slog.WarnContext(ctx, "item not found, cleaning up index",
					"item_id", id,
					"index_key", indexKey)
				if err := r.client.SRem(ctx, indexKey, id).Err(); err != nil {
					slog.WarnContext(ctx, "failed to clean up item index",
						"item_id", id,
						"index_key", indexKey,
						"error", err)
				}
				continue
			}
			return nil, errors.Wrapf(err, "failed to get item %s", id)
		}
		items = append(items, out.Item)
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].Location != items[j].Location {
			return items[i].Location < items[j].Location
		}
		return items[i].ID < items[j].ID
	})

	return &ListByOwnerOutput{Items: items}, nil
}
