package inkpress

import (
	"context"

	"github.com/goliatone/go-errors"
	"github.com/uptrace/bun"

	"github.com/google/uuid"
)

// EdgeStore is the store contract the toggle engine consumes. Every
// operation is a single atomic statement; the uniqueness constraint on
// the (actor, target) pair is what serializes concurrent toggles.
type EdgeStore interface {
	Exists(ctx context.Context, actorID, targetID uuid.UUID) (bool, error)
	// Insert creates the edge; a duplicate pair returns ErrEdgeExists.
	Insert(ctx context.Context, actorID, targetID uuid.UUID) error
	Delete(ctx context.Context, actorID, targetID uuid.UUID) error
	// Count reports edges pointing at the target.
	Count(ctx context.Context, targetID uuid.UUID) (int, error)
	// CountByActor reports edges originating from the actor.
	CountByActor(ctx context.Context, actorID uuid.UUID) (int, error)
	// TargetExists reports whether the target entity is present.
	TargetExists(ctx context.Context, targetID uuid.UUID) (bool, error)
}

type likes struct {
	db *bun.DB
}

// NewLikesRepository returns the EdgeStore for user→post likes.
func NewLikesRepository(db *bun.DB) EdgeStore {
	return &likes{db: db}
}

func (r *likes) Exists(ctx context.Context, actorID, targetID uuid.UUID) (bool, error) {
	return r.db.NewSelect().
		Model((*Like)(nil)).
		Where("lke.user_id = ?", actorID).
		Where("lke.post_id = ?", targetID).
		Exists(ctx)
}

func (r *likes) Insert(ctx context.Context, actorID, targetID uuid.UUID) error {
	edge := &Like{UserID: actorID, PostID: targetID}
	if _, err := r.db.NewInsert().Model(edge).Exec(ctx); err != nil {
		if IsDuplicateKeyError(err) {
			return ErrEdgeExists
		}
		return errors.Wrap(err, errors.CategoryInternal, "failed to insert like edge")
	}
	return nil
}

func (r *likes) Delete(ctx context.Context, actorID, targetID uuid.UUID) error {
	_, err := r.db.NewDelete().
		Model((*Like)(nil)).
		Where("user_id = ?", actorID).
		Where("post_id = ?", targetID).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, errors.CategoryInternal, "failed to delete like edge")
	}
	return nil
}

func (r *likes) Count(ctx context.Context, targetID uuid.UUID) (int, error) {
	return r.db.NewSelect().
		Model((*Like)(nil)).
		Where("lke.post_id = ?", targetID).
		Count(ctx)
}

func (r *likes) CountByActor(ctx context.Context, actorID uuid.UUID) (int, error) {
	return r.db.NewSelect().
		Model((*Like)(nil)).
		Where("lke.user_id = ?", actorID).
		Count(ctx)
}

func (r *likes) TargetExists(ctx context.Context, targetID uuid.UUID) (bool, error) {
	return r.db.NewSelect().
		Model((*Post)(nil)).
		Where("pst.id = ?", targetID).
		Exists(ctx)
}

type follows struct {
	db *bun.DB
}

// NewFollowsRepository returns the EdgeStore for user→user follows.
func NewFollowsRepository(db *bun.DB) EdgeStore {
	return &follows{db: db}
}

func (r *follows) Exists(ctx context.Context, actorID, targetID uuid.UUID) (bool, error) {
	return r.db.NewSelect().
		Model((*Follow)(nil)).
		Where("flw.follower_id = ?", actorID).
		Where("flw.followee_id = ?", targetID).
		Exists(ctx)
}

func (r *follows) Insert(ctx context.Context, actorID, targetID uuid.UUID) error {
	edge := &Follow{FollowerID: actorID, FolloweeID: targetID}
	if _, err := r.db.NewInsert().Model(edge).Exec(ctx); err != nil {
		if IsDuplicateKeyError(err) {
			return ErrEdgeExists
		}
		return errors.Wrap(err, errors.CategoryInternal, "failed to insert follow edge")
	}
	return nil
}

func (r *follows) Delete(ctx context.Context, actorID, targetID uuid.UUID) error {
	_, err := r.db.NewDelete().
		Model((*Follow)(nil)).
		Where("follower_id = ?", actorID).
		Where("followee_id = ?", targetID).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, errors.CategoryInternal, "failed to delete follow edge")
	}
	return nil
}

func (r *follows) Count(ctx context.Context, targetID uuid.UUID) (int, error) {
	return r.db.NewSelect().
		Model((*Follow)(nil)).
		Where("flw.followee_id = ?", targetID).
		Count(ctx)
}

func (r *follows) CountByActor(ctx context.Context, actorID uuid.UUID) (int, error) {
	return r.db.NewSelect().
		Model((*Follow)(nil)).
		Where("flw.follower_id = ?", actorID).
		Count(ctx)
}

func (r *follows) TargetExists(ctx context.Context, targetID uuid.UUID) (bool, error) {
	return r.db.NewSelect().
		Model((*User)(nil)).
		Where("usr.id = ?", targetID).
		Exists(ctx)
}
