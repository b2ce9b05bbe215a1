package domain

import "time"

// Follow is a directed edge: FollowerID follows FollowingID.
type Follow struct {
	FollowerID  string
	FollowingID string
	CreatedAt   time.Time
}

// FollowEdge is a follow edge resolved to the user on the other end.
type FollowEdge struct {
	Follow
	User User
}
