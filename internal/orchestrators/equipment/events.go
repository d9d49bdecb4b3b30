package equipment

import (
	"context"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/mechbay-api/internal/entities"
	"github.com/KirkDiggler/mechbay-api/internal/entities/equipment"
	"github.com/KirkDiggler/mechbay-api/internal/errors"
	equipmentsvc "github.com/KirkDiggler/mechbay-api/internal/services/equipment"
)

// subscriberPriority orders change handlers behind any game rule handlers
// sharing the bus
const subscriberPriority = 100

// changeTopics lists every topic a subscription listens on
func changeTopics() []string {
	kinds := []string{
		equipmentsvc.KindCharacter,
		equipmentsvc.KindMech,
		equipmentsvc.KindPart,
		equipmentsvc.KindItem,
	}
	actions := []string{
		equipmentsvc.ActionCreated,
		equipmentsvc.ActionUpdated,
		equipmentsvc.ActionDeleted,
	}

	topics := make([]string, 0, len(kinds)*len(actions)+1)
	for _, k := range kinds {
		for _, a := range actions {
			topics = append(topics, equipmentsvc.EventType(k, a))
		}
	}
	return append(topics, equipmentsvc.EventType(equipmentsvc.KindMech, equipmentsvc.ActionTransferred))
}

// pendingChange is a mutation that has been applied and not yet announced
type pendingChange struct {
	characterID string
	action      string
	entity      core.Entity
}

// changeLog collects the changes of one operation so they are published
// once, after the last store call, including when a cascade stops midway
type changeLog struct {
	changes []pendingChange
}

func (l *changeLog) add(characterID, action string, entity core.Entity) {
	l.changes = append(l.changes, pendingChange{
		characterID: characterID,
		action:      action,
		entity:      entity,
	})
}

func (o *Orchestrator) publish(ctx context.Context, log *changeLog) {
	for _, c := range log.changes {
		eventType := equipmentsvc.EventType(c.entity.GetType(), c.action)
		ev := events.NewGameEvent(eventType, &entities.Character{ID: c.characterID}, c.entity)
		if err := o.eventBus.Publish(ctx, ev); err != nil {
			slog.ErrorContext(ctx, "failed to publish change",
				"event_type", eventType,
				"entity_id", c.entity.GetID(),
				"error", err)
		}
	}
}

func toChange(ev events.Event) *equipmentsvc.Change {
	change := &equipmentsvc.Change{Type: ev.Type()}
	if src := ev.Source(); src != nil {
		change.CharacterID = src.GetID()
	}

	target := ev.Target()
	if target == nil {
		return change
	}
	change.Kind = target.GetType()
	change.EntityID = target.GetID()
	change.Action = ev.Type()[len("equipment."+change.Kind+"."):]

	switch t := target.(type) {
	case *equipment.Part:
		if t.IsAssigned() {
			change.MechID = t.MechID
		}
	case *equipment.Mech:
		change.MechID = t.MechID
	case *entities.Character:
		if t.HasEquippedMech() {
			change.MechID = t.EquippedMechID
		}
	}
	return change
}

type subscription struct {
	bus  events.EventBus
	ids  []string
	once sync.Once
	err  error
}

func (s *subscription) Close() error {
	s.once.Do(func() {
		for _, id := range s.ids {
			if err := s.bus.Unsubscribe(id); err != nil && s.err == nil {
				s.err = err
			}
		}
	})
	return s.err
}

// Subscribe registers a handler for equipment changes
func (o *Orchestrator) Subscribe(
	_ context.Context,
	input *equipmentsvc.SubscribeInput,
) (*equipmentsvc.SubscribeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Handler == nil {
		return nil, errors.InvalidArgument("handler is required")
	}

	characterID := input.CharacterID
	handler := input.Handler
	sub := &subscription{bus: o.eventBus}

	for _, topic := range changeTopics() {
		id := o.eventBus.SubscribeFunc(topic, subscriberPriority, func(ctx context.Context, ev events.Event) error {
			change := toChange(ev)
			if characterID != "" && change.CharacterID != characterID {
				return nil
			}
			if err := handler(ctx, change); err != nil {
				slog.WarnContext(ctx, "change handler failed",
					"event_type", change.Type,
					"entity_id", change.EntityID,
					"error", err)
			}
			return nil
		})
		sub.ids = append(sub.ids, id)
	}

	return &equipmentsvc.SubscribeOutput{Subscription: sub}, nil
}
