package part

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
	partKeyPrefix    = "part:"
	ownerIndexPrefix = "part:owner:"
	mechIndexPrefix  = "part:mech:"

	// Error messages
	errPartNil     = "part cannot be nil"
	errPartIDEmpty = "part ID cannot be empty"
	errOwnerEmpty  = "owner ID cannot be empty"
	errMechIDEmpty = "mech ID cannot be empty"
)

func partKey(id string) string {
	return partKeyPrefix + id
}

func ownerIndexKey(ownerID string) string {
	return ownerIndexPrefix + ownerID
}

func mechIndexKey(ownerID, mechID string) string {
	return mechIndexPrefix + ownerID + ":" + mechID
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis part repository.
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

// NewRedis creates a new Redis-backed part repository
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

func validatePart(p *equipment.Part) error {
	if p == nil {
		return errors.InvalidArgument(errPartNil)
	}
	if p.ID == "" {
		return errors.InvalidArgument(errPartIDEmpty)
	}
	if p.OwnerID == "" {
		return errors.InvalidArgumentf("part %s: %s", p.ID, errOwnerEmpty)
	}
	return nil
}

func decodePart(raw string) (*equipment.Part, error) {
	var p equipment.Part
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal part data")
	}
	p.Normalize()
	return &p, nil
}

// queueWrite adds the SET and index changes for next to the pipeline. prev is
// the stored version, nil on create.
func queueWrite(ctx context.Context, pipe redis.Pipeliner, prev, next *equipment.Part) error {
	data, err := json.Marshal(next)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal part data")
	}
	pipe.Set(ctx, partKey(next.ID), data, 0)

	if prev == nil {
		pipe.SAdd(ctx, ownerIndexKey(next.OwnerID), next.ID)
	}
	if prev != nil && prev.IsAssigned() && prev.MechID != next.MechID {
		pipe.SRem(ctx, mechIndexKey(prev.OwnerID, prev.MechID), next.ID)
	}
	if next.IsAssigned() && (prev == nil || prev.MechID != next.MechID) {
		pipe.SAdd(ctx, mechIndexKey(next.OwnerID, next.MechID), next.ID)
	}
	return nil
}

func queueDelete(ctx context.Context, pipe redis.Pipeliner, prev *equipment.Part) {
	pipe.Del(ctx, partKey(prev.ID))
	pipe.SRem(ctx, ownerIndexKey(prev.OwnerID), prev.ID)
	if prev.IsAssigned() {
		pipe.SRem(ctx, mechIndexKey(prev.OwnerID, prev.MechID), prev.ID)
	}
}

// prepare returns a normalized copy of p stamped for storage
func (r *redisRepository) prepare(p *equipment.Part, createdAt int64) *equipment.Part {
	next := p.Copy()
	next.Normalize()
	now := r.clock.Now().Unix()
	if createdAt == 0 {
		createdAt = now
	}
	next.CreatedAt = createdAt
	next.UpdatedAt = now
	return next
}

// loadWatched reads the given parts inside a WATCH. Missing ids are
// reported as NotFound unless allowMissing is set, in which case their slot
// in the result is nil.
func loadWatched(ctx context.Context, tx *redis.Tx, ids []string, allowMissing bool) ([]*equipment.Part, error) {
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = partKey(id)
	}

	values, err := tx.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load parts")
	}

	parts := make([]*equipment.Part, len(ids))
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			if allowMissing {
				continue
			}
			return nil, errors.NotFoundf("part with ID %s not found", ids[i])
		}
		p, err := decodePart(raw)
		if err != nil {
			return nil, err
		}
		parts[i] = p
	}
	return parts, nil
}

// watch runs fn under WATCH on the part keys. A transaction that lost the
// race surfaces as Aborted with no writes applied.
func (r *redisRepository) watch(ctx context.Context, ids []string, fn func(tx *redis.Tx) error) error {
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = partKey(id)
	}

	err := r.client.Watch(ctx, fn, keys...)
	if err == redis.TxFailedErr {
		return errors.Abortedf("concurrent modification of %d parts", len(ids))
	}
	return err
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	out, err := r.BatchCreate(ctx, BatchCreateInput{Parts: []*equipment.Part{input.Part}})
	if err != nil {
		return nil, err
	}
	return &CreateOutput{Part: out.Parts[0]}, nil
}

func (r *redisRepository) BatchCreate(ctx context.Context, input BatchCreateInput) (*BatchCreateOutput, error) {
	if len(input.Parts) == 0 {
		return &BatchCreateOutput{Parts: []*equipment.Part{}}, nil
	}

	ids := make([]string, len(input.Parts))
	seen := make(map[string]bool, len(input.Parts))
	for i, p := range input.Parts {
		if err := validatePart(p); err != nil {
			return nil, err
		}
		if seen[p.ID] {
			return nil, errors.InvalidArgumentf("part %s appears more than once", p.ID)
		}
		seen[p.ID] = true
		ids[i] = p.ID
	}

	created := make([]*equipment.Part, len(input.Parts))
	err := r.watch(ctx, ids, func(tx *redis.Tx) error {
		existing, err := loadWatched(ctx, tx, ids, true)
		if err != nil {
			return err
		}
		for i, p := range existing {
			if p != nil {
				return errors.AlreadyExistsf("part with ID %s already exists", ids[i])
			}
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			for i, p := range input.Parts {
				created[i] = r.prepare(p, 0)
				if err := queueWrite(ctx, pipe, nil, created[i]); err != nil {
					return err
				}
			}
			return nil
		})
		return err
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create %d parts", len(ids))
	}

	slog.DebugContext(ctx, "created parts", "count", len(created))

	return &BatchCreateOutput{Parts: created}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errPartIDEmpty)
	}

	result, err := r.client.Get(ctx, partKey(input.ID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("part with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get part")
	}

	p, err := decodePart(result)
	if err != nil {
		return nil, err
	}

	return &GetOutput{Part: p}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	out, err := r.BatchUpdate(ctx, BatchUpdateInput{Parts: []*equipment.Part{input.Part}})
	if err != nil {
		return nil, err
	}
	return &UpdateOutput{Part: out.Parts[0]}, nil
}

func (r *redisRepository) BatchUpdate(ctx context.Context, input BatchUpdateInput) (*BatchUpdateOutput, error) {
	if len(input.Parts) == 0 {
		return &BatchUpdateOutput{Parts: []*equipment.Part{}}, nil
	}

	ids := make([]string, len(input.Parts))
	seen := make(map[string]bool, len(input.Parts))
	for i, p := range input.Parts {
		if err := validatePart(p); err != nil {
			return nil, err
		}
		if seen[p.ID] {
			return nil, errors.InvalidArgumentf("part %s appears more than once", p.ID)
		}
		seen[p.ID] = true
		ids[i] = p.ID
	}

	updated := make([]*equipment.Part, len(input.Parts))
	err := r.watch(ctx, ids, func(tx *redis.Tx) error {
		existing, err := loadWatched(ctx, tx, ids, false)
		if err != nil {
			return err
		}
		for i, prev := range existing {
			if prev.OwnerID != input.Parts[i].OwnerID {
				return errors.FailedPreconditionf("part %s cannot change owner in place", prev.ID)
			}
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			for i, p := range input.Parts {
				updated[i] = r.prepare(p, existing[i].CreatedAt)
				if err := queueWrite(ctx, pipe, existing[i], updated[i]); err != nil {
					return err
				}
			}
			return nil
		})
		return err
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update %d parts", len(ids))
	}

	slog.DebugContext(ctx, "updated parts", "count", len(updated))

	return &BatchUpdateOutput{Parts: updated}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errPartIDEmpty)
	}
	if _, err := r.BatchDelete(ctx, BatchDeleteInput{IDs: []string{input.ID}}); err != nil {
		return nil, err
	}
	return &DeleteOutput{}, nil
}

func (r *redisRepository) BatchDelete(ctx context.Context, input BatchDeleteInput) (*BatchDeleteOutput, error) {
	if len(input.IDs) == 0 {
		return &BatchDeleteOutput{}, nil
	}

	seen := make(map[string]bool, len(input.IDs))
	for _, id := range input.IDs {
		if id == "" {
			return nil, errors.InvalidArgument(errPartIDEmpty)
		}
		if seen[id] {
			return nil, errors.InvalidArgumentf("part %s appears more than once", id)
		}
		seen[id] = true
	}

	err := r.watch(ctx, input.IDs, func(tx *redis.Tx) error {
		existing, err := loadWatched(ctx, tx, input.IDs, false)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			for _, prev := range existing {
				queueDelete(ctx, pipe, prev)
			}
			return nil
		})
		return err
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete %d parts", len(input.IDs))
	}

	slog.DebugContext(ctx, "deleted parts", "count", len(input.IDs))

	return &BatchDeleteOutput{Deleted: len(input.IDs)}, nil
}

func (r *redisRepository) ListByOwner(ctx context.Context, input ListByOwnerInput) (*ListByOwnerOutput, error) {
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerEmpty)
	}

	parts, err := r.listByIndex(ctx, ownerIndexKey(input.OwnerID), func(p *equipment.Part) bool {
		return p.OwnerID == input.OwnerID
	})
	if err != nil {
		return nil, err
	}

	return &ListByOwnerOutput{Parts: parts}, nil
}

func (r *redisRepository) ListByMechID(ctx context.Context, input ListByMechIDInput) (*ListByMechIDOutput, error) {
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerEmpty)
	}
	if input.MechID == "" {
		return nil, errors.InvalidArgument(errMechIDEmpty)
	}
	if equipment.IsUnattached(input.MechID) {
		return nil, errors.InvalidArgument("unassigned parts are listed by owner, not by mech")
	}

	parts, err := r.listByIndex(ctx, mechIndexKey(input.OwnerID, input.MechID), func(p *equipment.Part) bool {
		return p.OwnerID == input.OwnerID && p.MechID == input.MechID
	})
	if err != nil {
		return nil, err
	}

	return &ListByMechIDOutput{Parts: parts}, nil
}

// listByIndex loads every member of an index set. Members that are gone or
// no longer match are dropped from the index.
func (r *redisRepository) listByIndex(
	ctx context.Context,
	indexKey string,
	matches func(*equipment.Part) bool,
) ([]*equipment.Part, error) {
	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get parts from index %s", indexKey)
	}
	if len(ids) == 0 {
		return []*equipment.Part{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = partKey(id)
	}
	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load parts from index %s", indexKey)
	}

	parts := make([]*equipment.Part, 0, len(ids))
	var stale []interface{}
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			stale = append(stale, ids[i])
			continue
		}
		p, err := decodePart(raw)
		if err != nil {
			return nil, err
		}
		if !matches(p) {
			stale = append(stale, ids[i])
			continue
		}
		parts = append(parts, p)
	}

	if len(stale) > 0 {
		slog.WarnContext(ctx, "cleaning up stale part index entries",
			"index_key", indexKey,
			"count", len(stale))
		if err := r.client.SRem(ctx, indexKey, stale...).Err(); err != nil {
			slog.WarnContext(ctx, "failed to clean up stale part index entries",
				"index_key", indexKey,
				"error", err)
		}
	}

	sort.Slice(parts, func(i, j int) bool {
		return parts[i].ID < parts[j].ID
	})

	return parts, nil
}
