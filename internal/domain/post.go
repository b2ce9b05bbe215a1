package domain

import "time"

// Post is a piece of content authored by a single user.
type Post struct {
	ID           string
	AuthorID     string
	Content      string
	CreatedAt    time.Time
	Author       *User
	CommentCount int
	Comments     []Comment
}

// Comment belongs to one post and one author.
type Comment struct {
	ID        string
	PostID    string
	UserID    string
	Content   string
	CreatedAt time.Time
	Author    *User
}
