package domain

import "time"

// User represents a registered member of the network.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	AvatarURL    string
	DateOfBirth  *time.Time
	Bio          string
	Location     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserPatch carries the fields of a partial profile update. Nil means "keep".
type UserPatch struct {
	Email       *string
	Name        *string
	AvatarURL   *string
	DateOfBirth *time.Time
	// ClearDateOfBirth unsets the stored date; it wins over DateOfBirth.
	ClearDateOfBirth bool
	Bio              *string
	Location         *string
}

// Empty reports whether the patch changes nothing.
func (p UserPatch) Empty() bool {
	return p.Email == nil && p.Name == nil && p.AvatarURL == nil &&
		p.DateOfBirth == nil && !p.ClearDateOfBirth && p.Bio == nil && p.Location == nil
}

// Profile is a user together with its follow edges.
type Profile struct {
	User        User
	Followers   []FollowEdge
	Following   []FollowEdge
	IsFollowing *bool
}
