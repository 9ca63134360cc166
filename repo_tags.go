package inkpress

import (
	"context"
	"strings"

	"github.com/goliatone/go-repository-bun"
	"github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type Tags interface {
	repository.Repository[*Tag]

	GetBySlug(ctx context.Context, slug string) (*Tag, error)
	GetOrCreateBySlug(ctx context.Context, name string) (*Tag, error)
	GetOrCreateBySlugTx(ctx context.Context, tx bun.IDB, name string) (*Tag, error)
	ListWithCounts(ctx context.Context) ([]*Tag, error)
}

type tags struct {
	repository.Repository[*Tag]
	db *bun.DB
}

var _ Tags = (*tags)(nil)

func NewTagsRepository(db *bun.DB) Tags {
	repo := repository.NewRepository[*Tag](db, repository.ModelHandlers[*Tag]{
		NewRecord: func() *Tag { return &Tag{} },
		GetID: func(t *Tag) uuid.UUID {
			if t == nil {
				return uuid.Nil
			}
			return t.ID
		},
		SetID: func(t *Tag, id uuid.UUID) {
			if t != nil {
				t.ID = id
			}
		},
		GetIdentifier: func() string {
			return "slug"
		},
	})

	return &tags{
		Repository: repo,
		db:         db,
	}
}

func (a *tags) GetBySlug(ctx context.Context, slug string) (*Tag, error) {
	record := &Tag{}
	err := a.db.NewSelect().
		Model(record).
		Where("?TableAlias.slug = ?", slug).
		Limit(1).
		Scan(ctx)

	if err != nil {
		if repository.IsRecordNotFound(err) {
			return nil, repository.NewRecordNotFound().
				WithMetadata(map[string]any{
					"slug": slug,
				})
		}
		return nil, err
	}

	return record, nil
}

func (a *tags) GetOrCreateBySlug(ctx context.Context, name string) (*Tag, error) {
	return a.GetOrCreateBySlugTx(ctx, a.db, name)
}

// GetOrCreateBySlugTx inserts the tag if its slug is new and returns
// the stored row either way. The tag id is derived from the slug so
// concurrent creates on different nodes converge on the same row.
func (a *tags) GetOrCreateBySlugTx(ctx context.Context, tx bun.IDB, name string) (*Tag, error) {
	slug := Slugify(name)
	if slug == "" {
		return nil, ErrNoEmptyString
	}

	record := &Tag{
		Slug: slug,
		Name: strings.TrimSpace(name),
	}

	if id, err := hashid.NewUUID(slug); err == nil {
		record.ID = id
	} else {
		record.ID = uuid.New()
	}

	if _, err := tx.NewInsert().
		Model(record).
		On("CONFLICT (slug) DO NOTHING").
		Exec(ctx); err != nil && !IsDuplicateKeyError(err) {
		return nil, err
	}

	stored := &Tag{}
	err := tx.NewSelect().
		Model(stored).
		Where("?TableAlias.slug = ?", slug).
		Limit(1).
		Scan(ctx)
	if err != nil {
		return nil, err
	}

	return stored, nil
}

func (a *tags) ListWithCounts(ctx context.Context) ([]*Tag, error) {
	records := []*Tag{}
	err := a.db.NewSelect().
		Model(&records).
		ColumnExpr("tag.*").
		ColumnExpr("(SELECT COUNT(*) FROM post_tags AS ptg WHERE ptg.tag_id = tag.id) AS post_count").
		OrderExpr("tag.slug ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}

	return records, nil
}

// Slugify lowercases a tag name and collapses runs of non-alphanumeric
// characters into single hyphens.
func Slugify(name string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}
