// Package inkpress implements the backend for a minimal multi-user
// blogging platform: registration and login with bearer tokens, posts
// with tags and cover images, comments, and the idempotent like/follow
// toggles that drive the social graph.
//
// The authentication boundary:
//   - TokenService issues and verifies signed claims with an explicit
//     signing key supplied at construction time. Expired and tampered
//     tokens are indistinguishable to callers.
//   - UserProvider verifies credentials against stored bcrypt hashes.
//     Unknown emails and wrong passwords collapse into the same
//     invalid-credentials error so the API never confirms whether an
//     account exists.
//
// The social graph:
//   - ToggleEngine flips relation edges (like on a post, follow on a
//     user) without holding in-process locks. Duplicate concurrent
//     toggles are serialized by the store's uniqueness constraint; a
//     racing insert is treated as "already active" and re-read rather
//     than surfaced as a failure.
package inkpress
