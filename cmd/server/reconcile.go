package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/mechbay-api/internal/engine"
	"github.com/KirkDiggler/mechbay-api/internal/entities/equipment"
	"github.com/KirkDiggler/mechbay-api/internal/errors"
	redisclient "github.com/KirkDiggler/mechbay-api/internal/redis"
	mechrepo "github.com/KirkDiggler/mechbay-api/internal/repositories/mech"
	partrepo "github.com/KirkDiggler/mechbay-api/internal/repositories/part"
)

var reconcileFix bool

var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Find parts left pointing at missing mechs",
	Long: `Scan stored parts for mechIDs that no mech of the owner carries, as left by an
interrupted delete or transfer. With --fix each one is returned to inventory.
Run it with the server stopped; it does not take the server's locks.`,
	RunE: runReconcile,
}

func init() {
	reconcileCmd.Flags().BoolVar(&reconcileFix, "fix", false, "Unassign the dangling parts")
	reconcileCmd.Flags().StringVar(&redisAddr, "redis", "", "Redis address (overrides MECHBAY_REDIS_ADDR)")
	reconcileCmd.Flags().StringVar(&envFile, "env-file", "", "Optional .env file to load")
}

// reconcileReport lists what a scan found
type reconcileReport struct {
	Checked  int
	Corrupt  []string
	Dangling []*equipment.Part
	Fixed    int
}

type reconciler struct {
	client redisclient.Client
	mechs  mechrepo.Repository
	parts  partrepo.Repository
	engine engine.Engine
	out    io.Writer
}

func newReconciler(client redisclient.Client, out io.Writer) (*reconciler, error) {
	mechs, err := mechrepo.NewRedis(&mechrepo.RedisConfig{Client: client})
	if err != nil {
		return nil, err
	}
	parts, err := partrepo.NewRedis(&partrepo.RedisConfig{Client: client})
	if err != nil {
		return nil, err
	}
	eng, err := engine.New(&engine.Config{})
	if err != nil {
		return nil, err
	}
	return &reconciler{client: client, mechs: mechs, parts: parts, engine: eng, out: out}, nil
}

// run scans every part key. Mechs are listed once per owner.
func (r *reconciler) run(ctx context.Context, fix bool) (*reconcileReport, error) {
	report := &reconcileReport{}
	owners := make(map[string][]*equipment.Mech)

	iter := r.client.Scan(ctx, 0, "part:*", 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		if strings.HasPrefix(key, "part:owner:") || strings.HasPrefix(key, "part:mech:") {
			continue
		}

		data, err := r.client.Get(ctx, key).Result()
		if err != nil {
			fmt.Fprintf(r.out, "error reading %s: %v\n", key, err)
			continue
		}
		report.Checked++

		var part equipment.Part
		if err := json.Unmarshal([]byte(data), &part); err != nil {
			fmt.Fprintf(r.out, "corrupted JSON in %s\n", key)
			report.Corrupt = append(report.Corrupt, key)
			continue
		}
		if !part.IsAssigned() {
			continue
		}

		mechs, ok := owners[part.OwnerID]
		if !ok {
			out, err := r.mechs.ListByOwner(ctx, mechrepo.ListByOwnerInput{OwnerID: part.OwnerID})
			if err != nil {
				return nil, errors.Wrapf(err, "failed to list mechs for %s", part.OwnerID)
			}
			mechs = out.Mechs
			owners[part.OwnerID] = mechs
		}

		view := r.engine.EffectivePart(&engine.EffectivePartInput{Part: &part, Mechs: mechs})
		if !view.Dangling {
			continue
		}

		fmt.Fprintf(r.out, "part %s (owner %s) points at missing mech %s\n", part.ID, part.OwnerID, part.MechID)
		report.Dangling = append(report.Dangling, &part)
	}
	if err := iter.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to scan parts")
	}

	if !fix {
		return report, nil
	}

	for _, part := range report.Dangling {
		update, err := r.engine.ResolveAssignment(&engine.ResolveAssignmentInput{
			Part:     part,
			MechID:   equipment.UnattachedMechID,
			Location: equipment.LocationLight,
		})
		if err != nil {
			return report, err
		}
		fixed := part.Copy()
		update.Apply(fixed)
		if _, err := r.parts.Update(ctx, partrepo.UpdateInput{Part: fixed}); err != nil {
			return report, errors.Wrapf(err, "failed to unassign part %s", part.ID)
		}
		fmt.Fprintf(r.out, "unassigned part %s\n", part.ID)
		report.Fixed++
	}

	return report, nil
}

func runReconcile(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	slog.SetDefault(cfg.Logger())

	client, err := newRedisClient(cfg)
	if err != nil {
		return fmt.Errorf("failed to create redis client: %w", err)
	}
	defer func() {
		_ = client.Close() // nolint:errcheck // safe to ignore on exit
	}()

	ctx := context.Background()
	if err := redisclient.Ping(ctx, client); err != nil {
		return err
	}

	r, err := newReconciler(client, os.Stdout)
	if err != nil {
		return err
	}

	report, err := r.run(ctx, reconcileFix)
	if err != nil {
		return err
	}

	fmt.Printf("\nchecked %d parts: %d dangling, %d corrupted, %d fixed\n",
		report.Checked, len(report.Dangling), len(report.Corrupt), report.Fixed)
	return nil
}
