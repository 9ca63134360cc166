package inkpress

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"github.com/uptrace/bun"
)

// RepositoryManager exposes all repositories
type RepositoryManager interface {
	Validate() error
	MustValidate()
	RunInTx(ctx context.Context, opts *sql.TxOptions, f func(ctx context.Context, tx bun.Tx) error) error
	Users() Users
	Posts() Posts
	Comments() Comments
	Tags() Tags
	Likes() EdgeStore
	Follows() EdgeStore
}

type mngr struct {
	db       *bun.DB
	users    Users
	posts    Posts
	comments Comments
	tags     Tags
	likes    EdgeStore
	follows  EdgeStore
}

func NewRepositoryManager(db *bun.DB) RepositoryManager {
	tagsRepo := NewTagsRepository(db)
	return &mngr{
		db:       db,
		users:    NewUsersRepository(db),
		tags:     tagsRepo,
		posts:    NewPostsRepository(db, tagsRepo),
		comments: NewCommentsRepository(db),
		likes:    NewLikesRepository(db),
		follows:  NewFollowsRepository(db),
	}
}

func (m mngr) Validate() error {
	if m.users == nil {
		return errors.New("repository users should be initialized")
	}

	if m.posts == nil {
		return errors.New("repository posts should be initialized")
	}

	if m.comments == nil {
		return errors.New("repository comments should be initialized")
	}

	if m.tags == nil {
		return errors.New("repository tags should be initialized")
	}

	if m.likes == nil || m.follows == nil {
		return errors.New("edge repositories should be initialized")
	}

	return nil
}

func (m mngr) MustValidate() {
	if err := m.Validate(); err != nil {
		log.Panic(err)
	}
}

func (m mngr) RunInTx(ctx context.Context, opts *sql.TxOptions, f func(ctx context.Context, tx bun.Tx) error) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return m.db.RunInTx(ctx, opts, f)
	}
}

func (m mngr) Users() Users       { return m.users }
func (m mngr) Posts() Posts       { return m.posts }
func (m mngr) Comments() Comments { return m.comments }
func (m mngr) Tags() Tags         { return m.tags }
func (m mngr) Likes() EdgeStore   { return m.likes }
func (m mngr) Follows() EdgeStore { return m.follows }
