package inkpress

import (
	"context"
	"strings"

	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

const likeCountColumn = "(SELECT COUNT(*) FROM likes AS lke WHERE lke.post_id = pst.id) AS like_count"
const commentCountColumn = "(SELECT COUNT(*) FROM comments AS cmt WHERE cmt.post_id = pst.id AND cmt.deleted_at IS NULL) AS comment_count"

// PostsQuery narrows and pages a post listing. Zero values mean
// "no filter"; Limit falls back to a default page size.
type PostsQuery struct {
	Limit    int
	Offset   int
	AuthorID uuid.UUID
	TagSlug  string
	Search   string
}

const defaultPageSize = 20
const maxPageSize = 100

func (q PostsQuery) limit() int {
	if q.Limit <= 0 {
		return defaultPageSize
	}
	if q.Limit > maxPageSize {
		return maxPageSize
	}
	return q.Limit
}

type Posts interface {
	repository.Repository[*Post]

	CreateWithTags(ctx context.Context, post *Post, tagNames []string) (*Post, error)
	CreateWithTagsTx(ctx context.Context, tx bun.IDB, tagsRepo Tags, post *Post, tagNames []string) (*Post, error)
	GetWithRelations(ctx context.Context, id uuid.UUID) (*Post, error)
	ListPosts(ctx context.Context, query PostsQuery) ([]*Post, int, error)
	ReplaceTags(ctx context.Context, tagsRepo Tags, postID uuid.UUID, tagNames []string) error
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

type posts struct {
	repository.Repository[*Post]
	db   *bun.DB
	tags Tags
}

var _ Posts = (*posts)(nil)

func NewPostsRepository(db *bun.DB, tagsRepo Tags) Posts {
	repo := repository.NewRepository[*Post](db, repository.ModelHandlers[*Post]{
		NewRecord: func() *Post { return &Post{} },
		GetID: func(p *Post) uuid.UUID {
			if p == nil {
				return uuid.Nil
			}
			return p.ID
		},
		SetID: func(p *Post, id uuid.UUID) {
			if p != nil {
				p.ID = id
			}
		},
	})

	return &posts{
		Repository: repo,
		db:         db,
		tags:       tagsRepo,
	}
}

func (a *posts) CreateWithTags(ctx context.Context, post *Post, tagNames []string) (*Post, error) {
	var created *Post
	err := a.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		record, err := a.CreateWithTagsTx(ctx, tx, a.tags, post, tagNames)
		if err != nil {
			return err
		}
		created = record
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (a *posts) CreateWithTagsTx(ctx context.Context, tx bun.IDB, tagsRepo Tags, post *Post, tagNames []string) (*Post, error) {
	preparePostDefaults(post)

	record, err := a.Repository.CreateTx(ctx, tx, post)
	if err != nil {
		return nil, err
	}

	if err := attachTags(ctx, tx, tagsRepo, record.ID, tagNames); err != nil {
		return nil, err
	}

	return record, nil
}

// ReplaceTags rewires a post's tag set: existing joins are dropped and
// the supplied names re-attached, creating tags as needed.
func (a *posts) ReplaceTags(ctx context.Context, tagsRepo Tags, postID uuid.UUID, tagNames []string) error {
	return a.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewDelete().
			Model((*PostTag)(nil)).
			Where("post_id = ?", postID).
			Exec(ctx); err != nil {
			return err
		}
		return attachTags(ctx, tx, tagsRepo, postID, tagNames)
	})
}

func attachTags(ctx context.Context, tx bun.IDB, tagsRepo Tags, postID uuid.UUID, tagNames []string) error {
	seen := map[string]bool{}
	for _, name := range tagNames {
		slug := Slugify(name)
		if slug == "" || seen[slug] {
			continue
		}
		seen[slug] = true

		tag, err := tagsRepo.GetOrCreateBySlugTx(ctx, tx, name)
		if err != nil {
			return err
		}

		join := &PostTag{PostID: postID, TagID: tag.ID}
		if _, err := tx.NewInsert().
			Model(join).
			On("CONFLICT (post_id, tag_id) DO NOTHING").
			Exec(ctx); err != nil && !IsDuplicateKeyError(err) {
			return err
		}
	}
	return nil
}

func (a *posts) GetWithRelations(ctx context.Context, id uuid.UUID) (*Post, error) {
	record := &Post{}
	err := a.db.NewSelect().
		Model(record).
		Relation("Author").
		Relation("Tags").
		ColumnExpr("pst.*").
		ColumnExpr(likeCountColumn).
		ColumnExpr(commentCountColumn).
		Where("pst.id = ?", id).
		Limit(1).
		Scan(ctx)

	if err != nil {
		if repository.IsRecordNotFound(err) {
			return nil, repository.NewRecordNotFound().
				WithMetadata(map[string]any{
					"id": id.String(),
				})
		}
		return nil, err
	}

	if record.Author != nil {
		record.Author = record.Author.Sanitized()
	}

	return record, nil
}

func (a *posts) ListPosts(ctx context.Context, query PostsQuery) ([]*Post, int, error) {
	records := []*Post{}

	q := a.db.NewSelect().
		Model(&records).
		Relation("Author").
		Relation("Tags").
		ColumnExpr("pst.*").
		ColumnExpr(likeCountColumn).
		ColumnExpr(commentCountColumn)

	if query.AuthorID != uuid.Nil {
		q = q.Where("pst.author_id = ?", query.AuthorID)
	}

	if query.TagSlug != "" {
		q = q.Where(
			"EXISTS (SELECT 1 FROM post_tags AS ptg JOIN tags AS tag ON tag.id = ptg.tag_id WHERE ptg.post_id = pst.id AND tag.slug = ?)",
			query.TagSlug,
		)
	}

	if s := strings.TrimSpace(query.Search); s != "" {
		pattern := "%" + strings.ToLower(s) + "%"
		q = q.Where("(LOWER(pst.title) LIKE ? OR LOWER(pst.body) LIKE ?)", pattern, pattern)
	}

	total, err := q.
		OrderExpr("pst.created_at DESC").
		Limit(query.limit()).
		Offset(query.Offset).
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

func (a *posts) DeleteByID(ctx context.Context, id uuid.UUID) error {
	// Soft delete; the join rows stay behind but no listing reaches
	// them once the post is gone.
	_, err := a.db.NewDelete().
		Model((*Post)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	return err
}

func preparePostDefaults(record *Post) {
	if record == nil {
		return
	}

	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
}
