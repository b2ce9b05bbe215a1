package http

import (
	"time"

	"socialhub/internal/domain"
)

// UserResponse is the public projection of a user. Fields are listed
// explicitly so secrets never reach the wire.
type UserResponse struct {
	ID          string  `json:"id"`
	Email       string  `json:"email"`
	Name        string  `json:"name"`
	AvatarURL   string  `json:"avatarUrl"`
	DateOfBirth *string `json:"dateOfBirth"`
	Bio         string  `json:"bio"`
	Location    string  `json:"location"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

type FollowResponse struct {
	FollowerID  string        `json:"followerId"`
	FollowingID string        `json:"followingId"`
	CreatedAt   string        `json:"createdAt"`
	Follower    *UserResponse `json:"follower,omitempty"`
	Following   *UserResponse `json:"following,omitempty"`
}

type ProfileResponse struct {
	UserResponse
	Followers   []FollowResponse `json:"followers"`
	Following   []FollowResponse `json:"following"`
	IsFollowing *bool            `json:"isFollowing,omitempty"`
}

type CommentResponse struct {
	ID        string        `json:"id"`
	PostID    string        `json:"postId"`
	UserID    string        `json:"userId"`
	Content   string        `json:"content"`
	CreatedAt string        `json:"createdAt"`
	User      *UserResponse `json:"user,omitempty"`
}

type PostResponse struct {
	ID           string            `json:"id"`
	Content      string            `json:"content"`
	AuthorID     string            `json:"authorId"`
	Author       *UserResponse     `json:"author,omitempty"`
	CreatedAt    string            `json:"createdAt"`
	CommentCount int               `json:"commentCount"`
	Comments     []CommentResponse `json:"comments,omitempty"`
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func userToResponse(user domain.User) UserResponse {
	resp := UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		AvatarURL: user.AvatarURL,
		Bio:       user.Bio,
		Location:  user.Location,
		CreatedAt: formatTime(user.CreatedAt),
		UpdatedAt: formatTime(user.UpdatedAt),
	}
	if user.DateOfBirth != nil {
		v := user.DateOfBirth.UTC().Format("2006-01-02")
		resp.DateOfBirth = &v
	}
	return resp
}

func optionalUser(user *domain.User) *UserResponse {
	if user == nil {
		return nil
	}
	resp := userToResponse(*user)
	return &resp
}

func followToResponse(follow domain.Follow) FollowResponse {
	return FollowResponse{
		FollowerID:  follow.FollowerID,
		FollowingID: follow.FollowingID,
		CreatedAt:   formatTime(follow.CreatedAt),
	}
}

func profileToResponse(profile domain.Profile) ProfileResponse {
	resp := ProfileResponse{
		UserResponse: userToResponse(profile.User),
		Followers:    make([]FollowResponse, len(profile.Followers)),
		Following:    make([]FollowResponse, len(profile.Following)),
		IsFollowing:  profile.IsFollowing,
	}
	for i, edge := range profile.Followers {
		resp.Followers[i] = followToResponse(edge.Follow)
		resp.Followers[i].Follower = optionalUser(&edge.User)
	}
	for i, edge := range profile.Following {
		resp.Following[i] = followToResponse(edge.Follow)
		resp.Following[i].Following = optionalUser(&edge.User)
	}
	return resp
}

func commentToResponse(comment domain.Comment) CommentResponse {
	return CommentResponse{
		ID:        comment.ID,
		PostID:    comment.PostID,
		UserID:    comment.UserID,
		Content:   comment.Content,
		CreatedAt: formatTime(comment.CreatedAt),
		User:      optionalUser(comment.Author),
	}
}

func postToResponse(post domain.Post) PostResponse {
	resp := PostResponse{
		ID:           post.ID,
		Content:      post.Content,
		AuthorID:     post.AuthorID,
		Author:       optionalUser(post.Author),
		CreatedAt:    formatTime(post.CreatedAt),
		CommentCount: post.CommentCount,
	}
	if post.Comments != nil {
		resp.Comments = make([]CommentResponse, len(post.Comments))
		for i := range post.Comments {
			resp.Comments[i] = commentToResponse(post.Comments[i])
		}
	}
	return resp
}
