package inkpress

import (
	"context"

	"github.com/goliatone/go-errors"
	"github.com/google/uuid"
)

// EdgeKind names the relation a ToggleEngine manages.
type EdgeKind string

const (
	EdgeLike   EdgeKind = "like"
	EdgeFollow EdgeKind = "follow"
)

// ToggleState is the outcome of a toggle or status read: whether the
// edge is present for the actor and how many edges the target has.
// Follow engines also report how many edges the target itself holds
// outbound.
type ToggleState struct {
	Active    bool `json:"active"`
	Count     int  `json:"count"`
	Following *int `json:"following,omitempty"`
}

// ToggleEngine flips an edge between an actor and a target. Toggling
// is idempotent per observed state: the same actor toggling twice in a
// row always lands back where it started.
type ToggleEngine struct {
	kind   EdgeKind
	store  EdgeStore
	logger Logger
}

func NewToggleEngine(kind EdgeKind, store EdgeStore) *ToggleEngine {
	return &ToggleEngine{
		kind:   kind,
		store:  store,
		logger: defLogger{},
	}
}

func (e *ToggleEngine) WithLogger(logger Logger) *ToggleEngine {
	e.logger = logger
	return e
}

// Toggle flips the edge and returns the resulting state. A follow
// engine rejects actor == target. Losing an insert race to another
// request is treated as the edge already being present.
func (e *ToggleEngine) Toggle(ctx context.Context, actorID, targetID uuid.UUID) (*ToggleState, error) {
	if err := e.checkTarget(ctx, actorID, targetID); err != nil {
		return nil, err
	}

	active, err := e.store.Exists(ctx, actorID, targetID)
	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to read edge state")
	}

	if active {
		if err := e.store.Delete(ctx, actorID, targetID); err != nil {
			return nil, err
		}
	} else {
		err := e.store.Insert(ctx, actorID, targetID)
		if err != nil && !IsConflictError(err) {
			return nil, err
		}
		if err != nil {
			e.logger.Debug("%s edge raced, already present: %s -> %s", e.kind, actorID, targetID)
		}
	}

	return e.Status(ctx, actorID, targetID)
}

// Status reports the current edge state. A nil actor id reads as an
// anonymous caller: Active is always false, Count still reflects the
// target.
func (e *ToggleEngine) Status(ctx context.Context, actorID, targetID uuid.UUID) (*ToggleState, error) {
	state := &ToggleState{}

	if actorID != uuid.Nil {
		active, err := e.store.Exists(ctx, actorID, targetID)
		if err != nil {
			return nil, errors.Wrap(err, errors.CategoryInternal, "failed to read edge state")
		}
		state.Active = active
	}

	count, err := e.store.Count(ctx, targetID)
	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to count edges")
	}
	state.Count = count

	if e.kind == EdgeFollow {
		following, err := e.store.CountByActor(ctx, targetID)
		if err != nil {
			return nil, errors.Wrap(err, errors.CategoryInternal, "failed to count outbound edges")
		}
		state.Following = &following
	}

	return state, nil
}

func (e *ToggleEngine) checkTarget(ctx context.Context, actorID, targetID uuid.UUID) error {
	if e.kind == EdgeFollow && actorID == targetID {
		return ErrSelfFollow
	}

	ok, err := e.store.TargetExists(ctx, targetID)
	if err != nil {
		return errors.Wrap(err, errors.CategoryInternal, "failed to check toggle target")
	}

	if !ok {
		return errors.New("toggle target not found", errors.CategoryNotFound).
			WithCode(errors.CodeNotFound).
			WithTextCode("TARGET_NOT_FOUND").
			WithMetadata(map[string]any{
				"kind":   string(e.kind),
				"target": targetID.String(),
			})
	}

	return nil
}
