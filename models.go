package inkpress

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// User is the user model
type User struct {
	bun.BaseModel  `bun:"table:users,alias:usr"`
	ID             uuid.UUID  `bun:"id,pk,nullzero,type:uuid" json:"id,omitempty"`
	Name           string     `bun:"name,notnull" json:"name,omitempty"`
	Email          string     `bun:"email,notnull,unique" json:"email,omitempty"`
	Bio            string     `bun:"bio" json:"bio,omitempty"`
	AvatarURL      string     `bun:"avatar_url" json:"avatar_url,omitempty"`
	Phone          string     `bun:"phone_number" json:"phone_number,omitempty"`
	PasswordHash   string     `bun:"password_hash" json:"-"`
	LoginAttempts  int        `bun:"login_attempts" json:"-"`
	LoginAttemptAt *time.Time `bun:"login_attempt_at" json:"-"`
	LoggedInAt     *time.Time `bun:"loggedin_at" json:"-"`
	CreatedAt      *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
	UpdatedAt      *time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at,omitempty"`
	DeletedAt      *time.Time `bun:"deleted_at,soft_delete,nullzero" json:"-"`

	// Aggregates hydrated by the edge queries, not persisted.
	FollowerCount  int `bun:"follower_count,scanonly" json:"follower_count,omitempty"`
	FollowingCount int `bun:"following_count,scanonly" json:"following_count,omitempty"`
}

// Post is an authored entry; mutation requires the acting user to be the author.
type Post struct {
	bun.BaseModel `bun:"table:posts,alias:pst"`
	ID            uuid.UUID  `bun:"id,pk,nullzero,type:uuid" json:"id,omitempty"`
	AuthorID      uuid.UUID  `bun:"author_id,notnull,type:uuid" json:"author_id,omitempty"`
	Author        *User      `bun:"rel:belongs-to,join:author_id=id" json:"author,omitempty"`
	Title         string     `bun:"title,notnull" json:"title,omitempty"`
	Body          string     `bun:"body,notnull" json:"body,omitempty"`
	CoverURL      string     `bun:"cover_url" json:"cover_url,omitempty"`
	Tags          []*Tag     `bun:"m2m:post_tags,join:Post=Tag" json:"tags,omitempty"`
	CreatedAt     *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
	UpdatedAt     *time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at,omitempty"`
	DeletedAt     *time.Time `bun:"deleted_at,soft_delete,nullzero" json:"-"`

	LikeCount    int `bun:"like_count,scanonly" json:"like_count"`
	CommentCount int `bun:"comment_count,scanonly" json:"comment_count"`
}

// Tag is created lazily the first time a post references its slug.
type Tag struct {
	bun.BaseModel `bun:"table:tags,alias:tag"`
	ID            uuid.UUID `bun:"id,pk,nullzero,type:uuid" json:"id,omitempty"`
	Slug          string    `bun:"slug,notnull,unique" json:"slug,omitempty"`
	Name          string    `bun:"name,notnull" json:"name,omitempty"`

	PostCount int `bun:"post_count,scanonly" json:"post_count,omitempty"`
}

// PostTag joins posts and tags
type PostTag struct {
	bun.BaseModel `bun:"table:post_tags,alias:ptg"`
	PostID        uuid.UUID `bun:"post_id,pk,type:uuid" json:"post_id"`
	Post          *Post     `bun:"rel:belongs-to,join:post_id=id" json:"-"`
	TagID         uuid.UUID `bun:"tag_id,pk,type:uuid" json:"tag_id"`
	Tag           *Tag      `bun:"rel:belongs-to,join:tag_id=id" json:"-"`
}

// Comment belongs to a post and an author
type Comment struct {
	bun.BaseModel `bun:"table:comments,alias:cmt"`
	ID            uuid.UUID  `bun:"id,pk,nullzero,type:uuid" json:"id,omitempty"`
	PostID        uuid.UUID  `bun:"post_id,notnull,type:uuid" json:"post_id,omitempty"`
	AuthorID      uuid.UUID  `bun:"author_id,notnull,type:uuid" json:"author_id,omitempty"`
	Author        *User      `bun:"rel:belongs-to,join:author_id=id" json:"author,omitempty"`
	Body          string     `bun:"body,notnull" json:"body,omitempty"`
	CreatedAt     *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
	DeletedAt     *time.Time `bun:"deleted_at,soft_delete,nullzero" json:"-"`
}

// Like is a relation edge between a user and a post. The composite
// primary key doubles as the uniqueness constraint that serializes
// concurrent duplicate toggles; existence of the row IS the state.
type Like struct {
	bun.BaseModel `bun:"table:likes,alias:lke"`
	UserID        uuid.UUID  `bun:"user_id,pk,type:uuid" json:"user_id"`
	PostID        uuid.UUID  `bun:"post_id,pk,type:uuid" json:"post_id"`
	CreatedAt     *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
}

// Follow is a relation edge between two users. Rows are only ever
// inserted or deleted, never updated in place.
type Follow struct {
	bun.BaseModel `bun:"table:follows,alias:flw"`
	FollowerID    uuid.UUID  `bun:"follower_id,pk,type:uuid" json:"follower_id"`
	FolloweeID    uuid.UUID  `bun:"followee_id,pk,type:uuid" json:"followee_id"`
	CreatedAt     *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
}

// Sanitized returns a copy safe to serialize in API responses.
func (u *User) Sanitized() *User {
	if u == nil {
		return nil
	}
	out := *u
	out.PasswordHash = ""
	return &out
}
