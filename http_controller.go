package inkpress

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/gofiber/fiber/v2"
	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-print"
	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
)

// APIController exposes the JSON surface: auth, profiles, posts,
// comments, and the like/follow toggles.
type APIController struct {
	Debug   bool
	Logger  Logger
	Repo    RepositoryManager
	Auther  *RouteAuthenticator
	Tokens  TokenService
	Likes   *ToggleEngine
	Follows *ToggleEngine

	contextKey string
}

type APIControllerOption func(*APIController) *APIController

func NewAPIController(cfg Config, opts ...APIControllerOption) *APIController {
	c := &APIController{
		Logger:     defLogger{},
		contextKey: cfg.GetContextKey(),
	}

	for _, opt := range opts {
		c = opt(c)
	}

	if c.Repo == nil {
		panic("Missing RepositoryManager in api controller...")
	}

	if c.Auther == nil {
		panic("Missing RouteAuthenticator in api controller...")
	}

	if c.Tokens == nil {
		panic("Missing TokenService in api controller...")
	}

	if c.Likes == nil {
		c.Likes = NewToggleEngine(EdgeLike, c.Repo.Likes()).WithLogger(c.Logger)
	}

	if c.Follows == nil {
		c.Follows = NewToggleEngine(EdgeFollow, c.Repo.Follows()).WithLogger(c.Logger)
	}

	return c
}

func WithRepository(repo RepositoryManager) APIControllerOption {
	return func(c *APIController) *APIController {
		c.Repo = repo
		return c
	}
}

func WithAuther(auther *RouteAuthenticator) APIControllerOption {
	return func(c *APIController) *APIController {
		c.Auther = auther
		return c
	}
}

func WithTokenService(tokens TokenService) APIControllerOption {
	return func(c *APIController) *APIController {
		c.Tokens = tokens
		return c
	}
}

func WithControllerLogger(logger Logger) APIControllerOption {
	return func(c *APIController) *APIController {
		if logger != nil {
			c.Logger = logger
		}
		return c
	}
}

func WithDebug(debug bool) APIControllerOption {
	return func(c *APIController) *APIController {
		c.Debug = debug
		return c
	}
}

// RegisterAPIRoutes mounts every route on the app.
func RegisterAPIRoutes(app *fiber.App, controller *APIController) {
	protected := controller.Auther.ProtectedRoute()
	optional := controller.Auther.OptionalRoute()

	auth := app.Group("/auth")
	auth.Post("/register", controller.Register)
	auth.Post("/login", controller.Login)
	auth.Put("/password", protected, controller.ChangePassword)

	app.Get("/me", protected, controller.Me)
	app.Put("/me", protected, controller.UpdateProfile)

	app.Get("/users/:id", controller.UserProfile)
	app.Post("/users/:id/follow", protected, controller.ToggleFollow)
	app.Get("/users/:id/follow", optional, controller.FollowStatus)

	app.Post("/posts", protected, controller.CreatePost)
	app.Get("/posts", optional, controller.ListPosts)
	app.Get("/posts/mine", protected, controller.ListOwnPosts)
	app.Get("/posts/:id", optional, controller.GetPost)
	app.Put("/posts/:id", protected, controller.UpdatePost)
	app.Delete("/posts/:id", protected, controller.DeletePost)

	app.Post("/posts/:id/comments", protected, controller.CreateComment)
	app.Get("/posts/:id/comments", controller.ListComments)
	app.Delete("/comments/:id", protected, controller.DeleteComment)

	app.Post("/posts/:id/like", protected, controller.ToggleLike)
	app.Get("/posts/:id/like", optional, controller.LikeStatus)

	app.Get("/tags", controller.ListTags)
	app.Get("/tags/:slug/posts", controller.ListPostsByTag)

	app.Get("/search", controller.SearchPosts)
}

// RegisterPayload is the registration body
type RegisterPayload struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Bio      string `json:"bio"`
	Password string `json:"password"`
}

// Validate will run validation rules
func (r RegisterPayload) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Email, validation.Required, validation.Length(6, 100), is.Email),
		validation.Field(&r.Bio, validation.Length(0, 2000)),
		validation.Field(&r.Password, validation.Required, validation.Length(8, 100)),
	)
}

func (a *APIController) Register(c *fiber.Ctx) error {
	payload := new(RegisterPayload)

	if err := c.BodyParser(payload); err != nil {
		a.Logger.Error("register user parse payload: %s", err)
		return RenderError(c, a.Logger, goerrors.Wrap(err, goerrors.CategoryBadInput, "Error parsing body").
			WithCode(goerrors.CodeBadRequest))
	}

	if err := payload.Validate(); err != nil {
		a.Logger.Error("register user validate payload: %s", err)
		return RenderValidationError(c, err)
	}

	if a.Debug {
		fmt.Println("======= AUTH REGISTER ======")
		fmt.Println(print.MaybePrettyJSON(payload))
		fmt.Println("============================")
	}

	var user *User

	handler := NewRegisterUserHandler(a.Repo).WithLogger(a.Logger)
	handler.OnResponse = func(u *User) {
		user = u
	}

	req := RegisterUserMessage{
		Name:     payload.Name,
		Email:    payload.Email,
		Phone:    payload.Phone,
		Bio:      payload.Bio,
		Password: payload.Password,
	}

	if err := handler.Execute(c.Context(), req); err != nil {
		a.Logger.Error("register user error: %s", err)
		return RenderError(c, a.Logger, err)
	}

	token, err := a.Tokens.Generate(&authIdentity{
		id:    user.ID.String(),
		email: user.Email,
		name:  user.Name,
	})
	if err != nil {
		return RenderError(c, a.Logger, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"user":  user,
		"token": token,
	})
}

// LoginPayload is the login body
type LoginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate will run validation rules
func (r LoginPayload) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required),
	)
}

func (a *APIController) Login(c *fiber.Ctx) error {
	payload := new(LoginPayload)

	if err := c.BodyParser(payload); err != nil {
		return RenderError(c, a.Logger, goerrors.Wrap(err, goerrors.CategoryBadInput, "Error parsing body").
			WithCode(goerrors.CodeBadRequest))
	}

	if err := payload.Validate(); err != nil {
		return RenderValidationError(c, err)
	}

	token, err := a.Auther.auth.Login(c.Context(), payload.Email, payload.Password)
	if err != nil {
		a.Logger.Error("Login error: %s", err)
		return RenderError(c, a.Logger, err)
	}

	return c.JSON(fiber.Map{"token": token})
}

// ChangePasswordPayload rotates the caller's password
type ChangePasswordPayload struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// Validate will run validation rules
func (r ChangePasswordPayload) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.CurrentPassword, validation.Required),
		validation.Field(&r.NewPassword, validation.Required, validation.Length(8, 100)),
	)
}

func (a *APIController) ChangePassword(c *fiber.Ctx) error {
	actorID, err := a.currentUserID(c)
	if err != nil {
		return RenderError(c, a.Logger, err)
	}

	payload := new(ChangePasswordPayload)
	if err := c.BodyParser(payload); err != nil {
		return RenderError(c, a.Logger, goerrors.Wrap(err, goerrors.CategoryBadInput, "Error parsing body").
			WithCode(goerrors.CodeBadRequest))
	}

	if err := payload.Validate(); err != nil {
		return RenderValidationError(c, err)
	}

	handler := NewChangePasswordHandler(a.Repo).WithLogger(a.Logger)

	req := ChangePasswordMessage{
		UserID:          actorID,
		CurrentPassword: payload.CurrentPassword,
		NewPassword:     payload.NewPassword,
	}

	if err := handler.Execute(c.Context(), req); err != nil {
		return RenderError(c, a.Logger, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (a *APIController) Me(c *fiber.Ctx) error {
	actorID, err := a.currentUserID(c)
	if err != nil {
		return RenderError(c, a.Logger, err)
	}

	user, err := a.Repo.Users().GetProfile(c.Context(), actorID)
	if err != nil {
		return RenderError(c, a.Logger, err)
	}

	return c.JSON(fiber.Map{"user": user.Sanitized()})
}

// UpdateProfilePayload patches mutable profile fields
type UpdateProfilePayload struct {
	Name      *string `json:"name"`
	Email     *string `json:"email"`
	Bio       *string `json:"bio"`
	AvatarURL *string `json:"avatar_url"`
	Phone     *string `json:"phone"`
}

// Validate will run validation rules
func (r UpdateProfilePayload) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Length(1, 200)),
		validation.Field(&r.Email, validation.Length(6, 100), is.Email),
		validation.Field(&r.Bio, validation.Length(0, 2000)),
		validation.Field(&r.AvatarURL, is.URL),
	)
}

func (a *APIController) UpdateProfile(c *fiber.Ctx) error {
	actorID, err := a.currentUserID(c)
	if err != nil {
		return RenderError(c, a.Logger, err)
	}

	payload := new(UpdateProfilePayload)
	if err := c.BodyParser(payload); err != nil {
		return RenderError(c, a.Logger, goerrors.Wrap(err, goerrors.CategoryBadInput, "Error parsing body").
			WithCode(goerrors.CodeBadRequest))
	}

	if err := payload.Validate(); err != nil {
		return RenderValidationError(c, err)
	}

	var user *User

	handler := NewUpdateProfileHandler(a.Repo).WithLogger(a.Logger)
	handler.OnResponse = func(u *User) {
		user = u
	}

	req := UpdateProfileMessage{
		UserID:    actorID,
		Name:      payload.Name,
		Email:     payload.Email,
		Bio:       payload.Bio,
		AvatarURL: payload.AvatarURL,
		Phone:     payload.Phone,
	}

	if err := handler.Execute(c.Context(), req); err != nil {
		return RenderError(c, a.Logger, err)
	}

	// name and email travel inside the token claims so we mint a fresh one
	token, err := a.Tokens.Generate(&authIdentity{
		id:    user.ID.String(),
		email: user.Email,
		name:  user.Name,
	})
	if err != nil {
		return RenderError(c, a.Logger, err)
	}

	return c.JSON(fiber.Map{
		"user":  user,
		"token": token,
	})
}

func (a *APIController) UserProfile(c *fiber.Ctx) error {
	targetID, err := a.paramUUID(c, "id")
	if err != nil {
		return RenderError(c, a.Logger, err)
	}

	user, err := a.Repo.Users().GetProfile(c.Context(), targetID)
	if err != nil {
		return RenderError(c, a.Logger, err)
	}

	return c.JSON(fiber.Map{"user": user.Sanitized()})
}

// PostPayload is the post create body
type PostPayload struct {
	Title    string   `json:"title"`
	Body     string   `json:"body"`
	CoverURL string   `json:"cover_url"`
	Tags     []string `json:"tags"`
}

// Validate will run validation rules
func (r PostPayload) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Body, validation.Required),
		validation.Field(&r.CoverURL, is.URL),
		validation.Field(&r.Tags, validation.Length(0, 20)),
	)
}

func (a *APIController) CreatePost(c *fiber.Ctx) error {
	actorID, err := a.currentUserID(c)
	if err != nil {
		return RenderError(c, a.Logger, err)
	}

	payload := new(PostPayload)
	if err := c.BodyParser(payload); err != nil {
		return RenderError(c, a.Logger, goerrors.Wrap(err, goerrors.CategoryBadInput, "Error parsing body").
			WithCode(goerrors.CodeBadRequest))
	}

	if err := payload.Validate(); err != nil {
		return RenderValidationError(c, err)
	}

	post := &Post{
		AuthorID: actorID,
		Title:    payload.Title,
		Body:     payload.Body,
		CoverURL: payload.CoverURL,
	}

	created, err := a.Repo.Posts().CreateWithTags(c.Context(), post, payload.Tags)
	if err != nil {
		return RenderError(c, a.Logger, err)
	}

	full, err := a.Repo.Posts().GetWithRelations(c.Context(), created.ID)
	if err != nil {
		return RenderError(c, a.Logger, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"post": full})
}

func (a *APIController) ListPosts(c *fiber.Ctx) error {
	query := PostsQuery{
		Limit:   c.QueryInt("limit"),
		Offset:  c.QueryInt("offset"),
		TagSlug: c.Query("tag"),
		Search:  c.Query("q"),
	}

	if author := c.Query("author_id"); author != "" {
		id, ok := parseUUID(author)
		if !ok {
			return RenderError(c, a.Logger, goerrors.New("author_id is not a valid uuid", goerrors.CategoryBadInput).
				WithCode(goerrors.CodeBadRequest))
		}
		query.AuthorID = id
	}

	records, total, err := a.Repo.Posts().ListPosts(c.Context(), query)
	if err != nil {
		return RenderError(c, a.Logger, err)
	}

	return c.JSON(fiber.Map{
		"posts": records,
		"total": total,
	})
}

func (a *APIController) ListOwnPosts(c *fiber.Ctx) error {
	actorID, err := a.currentUserID(c)
	if err != nil {
		return RenderError(c, a.Logger, err)
	}

	query := PostsQuery{
		Limit:    c.QueryInt("limit"),
		Offset:   c.QueryInt("offset"),
		AuthorID: actorID,
	}

	records, total, err := a.Repo.Posts().ListPosts(c.Context(), query)
	if err != nil {
		return RenderError(c, a.Logger, err)
	}

	return c.JSON(fiber.Map{
		"posts": records,
		"total": total,
	})
}

func (a *APIController) GetPost(c *fiber.Ctx) error {
	id, err := a.paramUUID(c, "id")
	if err != nil {
		return RenderError(c, a.Logger, err)
	}

	post, err := a.Repo.Posts().GetWithRelations(c.Context(), id)
	if err != nil {
		return RenderError(c, a.Logger, err)
	}

	return c.JSON(fiber.Map{"post": post})
}

// PostUpdatePayload patches a post; nil fields are left untouched
type PostUpdatePayload struct {
	Title    *string   `json:"title"`
	Body     *string   `json:"body"`
	CoverURL *string   `json:"cover_url"`
	Tags     *[]string `json:"tags"`
}

// Validate will run validation rules
func (r PostUpdatePayload) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Length(1, 200)),
		validation.Field(&r.CoverURL, is.URL),
	)
}

func (a *APIController) UpdatePost(c *fiber.Ctx) error {
	actorID, err := a.currentUserID(c)
	if err != nil {
		return RenderError(c, a.Logger, err)
	}

	id, err := a.paramUUID(c, "id")
	if err != nil {
		return RenderError(c, a.Logger, err)
	}

	payload := new(PostUpdatePayload)
	if err := c.BodyParser(payload); err != nil {
		return RenderError(c, a.Logger, goerrors.Wrap(err, goerrors.CategoryBadInput, "Error parsing body").
			WithCode(goerrors.CodeBadRequest))
	}

	if err := payload.Validate(); err != nil {
		return RenderValidationError(c, err)
	}

	post, err := a.Repo.Posts().GetByID(c.Context(), id.String())
	if err != nil {
		return RenderError(c, a.Logger, err)
	}

	if err := requireOwner(post.AuthorID, actorID); err != nil {
		return RenderError(c, a.Logger, err)
	}

	if payload.Title != nil {
		post.Title = *payload.Title
	}

	if payload.Body != nil {
		post.Body = *payload.Body
	}

	if payload.CoverURL != nil {
		post.CoverURL = *payload.CoverURL
	}

	criteria := []repository.UpdateCriteria{
		repository.UpdateByID(post.ID.String()),
	}

	if _, err := a.Repo.Posts().Update(c.Context(), post, criteria...); err != nil {
		return RenderError(c, a.Logger, err)
	}

	if payload.Tags != nil {
		if err := a.Repo.Posts().ReplaceTags(c.Context(), a.Repo.Tags(), post.ID, *payload.Tags); err != nil {
			return RenderError(c, a.Logger, err)
		}
	}

	full, err := a.Repo.Posts().GetWithRelations(c.Context(), post.ID)
	if err != nil {
		return RenderError(c, a.Logger, err)
	}

	return c.JSON(fiber.Map{"post": full})
}

func (a *APIController) DeletePost(c *fiber.Ctx) error {
	actorID, err := a.currentUserID(c)
	if err != nil {
		return RenderError(c, a.Logger, err)
	}

	id, err := a.paramUUID(c, "id")
	if err != nil {
		return RenderError(c, a.Logger, err)
	}

	post, err := a.Repo.Posts().GetByID(c.Context(), id.String())
	if err != nil {
		return RenderError(c, a.Logger, err)
	}

	if err := requireOwner(post.AuthorID, actorID); err != nil {
		return RenderError(c, a.Logger, err)
	}

	if err := a.Repo.Posts().DeleteByID(c.Context(), post.ID); err != nil {
		return RenderError(c, a.Logger, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// CommentPayload is the comment create body
type CommentPayload struct {
	Body string `json:"body"`
}

// Validate will run validation rules
func (r CommentPayload) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Body, validation.Required, validation.Length(1, 2000)),
	)
}

func (a *APIController) CreateComment(c *fiber.Ctx) error {
	actorID, err := a.currentUserID(c)
	if err != nil {
		return RenderError(c, a.Logger, err)
	}

	postID, err := a.paramUUID(c, "id")
	if err != nil {
		return RenderError(c, a.Logger, err)
	}

	payload := new(CommentPayload)
	if err := c.BodyParser(payload); err != nil {
		return RenderError(c, a.Logger, goerrors.Wrap(err, goerrors.CategoryBadInput, "Error parsing body").
			WithCode(goerrors.CodeBadRequest))
	}

	if err := payload.Validate(); err != nil {
		return RenderValidationError(c, err)
	}

	if _, err := a.Repo.Posts().GetByID(c.Context(), postID.String()); err != nil {
		return RenderError(c, a.Logger, err)
	}

	comment := &Comment{
		PostID:   postID,
		AuthorID: actorID,
		Body:     payload.Body,
	}

	created, err := a.Repo.Comments().Add(c.Context(), comment)
	if err != nil {
		return RenderError(c, a.Logger, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"comment": created})
}

func (a *APIController) ListComments(c *fiber.Ctx) error {
	postID, err := a.paramUUID(c, "id")
	if err != nil {
		return RenderError(c, a.Logger, err)
	}

	records, total, err := a.Repo.Comments().ListByPost(
		c.Context(),
		postID,
		c.QueryInt("limit"),
		c.QueryInt("offset"),
	)
	if err != nil {
		return RenderError(c, a.Logger, err)
	}

	return c.JSON(fiber.Map{
		"comments": records,
		"total":    total,
	})
}

func (a *APIController) DeleteComment(c *fiber.Ctx) error {
	actorID, err := a.currentUserID(c)
	if err != nil {
		return RenderError(c, a.Logger, err)
	}

	id, err := a.paramUUID(c, "id")
	if err != nil {
		return RenderError(c, a.Logger, err)
	}

	comment, err := a.Repo.Comments().GetByID(c.Context(), id.String())
	if err != nil {
		return RenderError(c, a.Logger, err)
	}

	// the comment author or the post author can remove a comment
	if comment.AuthorID != actorID {
		post, err := a.Repo.Posts().GetByID(c.Context(), comment.PostID.String())
		if err != nil {
			return RenderError(c, a.Logger, err)
		}

		if err := requireOwner(post.AuthorID, actorID); err != nil {
			return RenderError(c, a.Logger, err)
		}
	}

	if err := a.Repo.Comments().DeleteByID(c.Context(), comment.ID); err != nil {
		return RenderError(c, a.Logger, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (a *APIController) ToggleLike(c *fiber.Ctx) error {
	actorID, err := a.currentUserID(c)
	if err != nil {
		return RenderError(c, a.Logger, err)
	}

	postID, err := a.paramUUID(c, "id")
	if err != nil {
		return RenderError(c, a.Logger, err)
	}

	state, err := a.Likes.Toggle(c.Context(), actorID, postID)
	if err != nil {
		return RenderError(c, a.Logger, err)
	}

	return c.JSON(state)
}

func (a *APIController) LikeStatus(c *fiber.Ctx) error {
	postID, err := a.paramUUID(c, "id")
	if err != nil {
		return RenderError(c, a.Logger, err)
	}

	state, err := a.Likes.Status(c.Context(), a.optionalUserID(c), postID)
	if err != nil {
		return RenderError(c, a.Logger, err)
	}

	return c.JSON(state)
}

func (a *APIController) ToggleFollow(c *fiber.Ctx) error {
	actorID, err := a.currentUserID(c)
	if err != nil {
		return RenderError(c, a.Logger, err)
	}

	targetID, err := a.paramUUID(c, "id")
	if err != nil {
		return RenderError(c, a.Logger, err)
	}

	state, err := a.Follows.Toggle(c.Context(), actorID, targetID)
	if err != nil {
		return RenderError(c, a.Logger, err)
	}

	return c.JSON(state)
}

func (a *APIController) FollowStatus(c *fiber.Ctx) error {
	targetID, err := a.paramUUID(c, "id")
	if err != nil {
		return RenderError(c, a.Logger, err)
	}

	state, err := a.Follows.Status(c.Context(), a.optionalUserID(c), targetID)
	if err != nil {
		return RenderError(c, a.Logger, err)
	}

	return c.JSON(state)
}

func (a *APIController) ListPostsByTag(c *fiber.Ctx) error {
	query := PostsQuery{
		Limit:   c.QueryInt("limit"),
		Offset:  c.QueryInt("offset"),
		TagSlug: c.Params("slug"),
	}

	records, total, err := a.Repo.Posts().ListPosts(c.Context(), query)
	if err != nil {
		return RenderError(c, a.Logger, err)
	}

	return c.JSON(fiber.Map{
		"posts": records,
		"total": total,
	})
}

func (a *APIController) SearchPosts(c *fiber.Ctx) error {
	term := c.Query("q")
	if term == "" {
		return RenderError(c, a.Logger, goerrors.New("q is required", goerrors.CategoryBadInput).
			WithCode(goerrors.CodeBadRequest))
	}

	query := PostsQuery{
		Limit:  c.QueryInt("limit"),
		Offset: c.QueryInt("offset"),
		Search: term,
	}

	records, total, err := a.Repo.Posts().ListPosts(c.Context(), query)
	if err != nil {
		return RenderError(c, a.Logger, err)
	}

	return c.JSON(fiber.Map{
		"posts": records,
		"total": total,
	})
}

func (a *APIController) ListTags(c *fiber.Ctx) error {
	records, err := a.Repo.Tags().ListWithCounts(c.Context())
	if err != nil {
		return RenderError(c, a.Logger, err)
	}

	return c.JSON(fiber.Map{"tags": records})
}

func (a *APIController) currentUserID(c *fiber.Ctx) (uuid.UUID, error) {
	claims := ClaimsFromCtx(c, a.contextKey)
	if claims == nil {
		return uuid.Nil, goerrors.New("missing authentication claims", goerrors.CategoryAuth).
			WithCode(goerrors.CodeUnauthorized)
	}

	id, ok := parseUUID(claims.UserID())
	if !ok {
		return uuid.Nil, goerrors.Wrap(ErrTokenMalformed, goerrors.CategoryAuth, "token subject is not a valid uuid")
	}

	return id, nil
}

func (a *APIController) optionalUserID(c *fiber.Ctx) uuid.UUID {
	claims := ClaimsFromCtx(c, a.contextKey)
	if claims == nil {
		return uuid.Nil
	}

	id, ok := parseUUID(claims.UserID())
	if !ok {
		return uuid.Nil
	}

	return id
}

func (a *APIController) paramUUID(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, ok := parseUUID(c.Params(name))
	if !ok {
		return uuid.Nil, goerrors.New(name+" is not a valid uuid", goerrors.CategoryBadInput).
			WithCode(goerrors.CodeBadRequest)
	}
	return id, nil
}

func requireOwner(ownerID, actorID uuid.UUID) error {
	if ownerID == actorID {
		return nil
	}

	return goerrors.New("you do not own this resource", goerrors.CategoryAuthz).
		WithCode(goerrors.CodeForbidden).
		WithTextCode("NOT_OWNER")
}
