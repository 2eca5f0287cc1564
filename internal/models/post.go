package models

import "github.com/google/uuid"

// Post is a community feed message. The feed is one shared collection;
// reactions only keep a count, not who reacted.
type Post struct {
	PostID    uuid.UUID `json:"post_id"`
	AccountID uuid.UUID `json:"account_id"`
	Author    string    `json:"author"`
	Date      string    `json:"date"`
	Body      string    `json:"body"`
	Reactions int       `json:"reactions"`
}
