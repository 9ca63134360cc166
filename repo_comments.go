package inkpress

import (
	"context"

	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type Comments interface {
	repository.Repository[*Comment]

	Add(ctx context.Context, comment *Comment) (*Comment, error)
	ListByPost(ctx context.Context, postID uuid.UUID, limit, offset int) ([]*Comment, int, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

type comments struct {
	repository.Repository[*Comment]
	db *bun.DB
}

var _ Comments = (*comments)(nil)

func NewCommentsRepository(db *bun.DB) Comments {
	repo := repository.NewRepository[*Comment](db, repository.ModelHandlers[*Comment]{
		NewRecord: func() *Comment { return &Comment{} },
		GetID: func(c *Comment) uuid.UUID {
			if c == nil {
				return uuid.Nil
			}
			return c.ID
		},
		SetID: func(c *Comment, id uuid.UUID) {
			if c != nil {
				c.ID = id
			}
		},
	})

	return &comments{
		Repository: repo,
		db:         db,
	}
}

func (a *comments) Add(ctx context.Context, comment *Comment) (*Comment, error) {
	if comment != nil && comment.ID == uuid.Nil {
		comment.ID = uuid.New()
	}
	return a.Repository.Create(ctx, comment)
}

func (a *comments) ListByPost(ctx context.Context, postID uuid.UUID, limit, offset int) ([]*Comment, int, error) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	records := []*Comment{}
	total, err := a.db.NewSelect().
		Model(&records).
		Relation("Author").
		Where("cmt.post_id = ?", postID).
		OrderExpr("cmt.created_at DESC").
		Limit(limit).
		Offset(offset).
		ScanAndCount(ctx)
	if err != nil {
		return nil, 0, err
	}

	for _, record := range records {
		if record.Author != nil {
			record.Author = record.Author.Sanitized()
		}
	}

	return records, total, nil
}

func (a *comments) DeleteByID(ctx context.Context, id uuid.UUID) error {
	_, err := a.db.NewDelete().
		Model((*Comment)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	return err
}
