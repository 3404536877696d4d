package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for Follower; all wrap ErrValidation.
var (
	ErrEmptyFollowerID  = fmt.Errorf("%w: follower ID cannot be empty", ErrValidation)
	ErrEmptyFollowerRef = fmt.Errorf("%w: follower and followed accounts cannot be empty", ErrValidation)
	ErrSelfFollow       = fmt.Errorf("%w: an account cannot follow itself", ErrValidation)
)

// Follower is a directed edge between two Accounts. Both references are
// delete-protected. Declared in the schema but not yet exposed through the
// API.
type Follower struct {
	ID          uuid.UUID `json:"id"`
	CreatedDate time.Time `json:"created_date"`
	FollowerID  uuid.UUID `json:"follower"`
	FollowedID  uuid.UUID `json:"followed"`
}

// NewFollower creates a new follower edge from one account to another.
func NewFollower(followerID, followedID uuid.UUID) (*Follower, error) {
	edge := &Follower{
		ID:          uuid.New(),
		CreatedDate: time.Now().UTC(),
		FollowerID:  followerID,
		FollowedID:  followedID,
	}

	if err := edge.Validate(); err != nil {
		return nil, err
	}

	return edge, nil
}

// Validate checks if the Follower edge has valid data.
func (f *Follower) Validate() error {
	if f.ID == uuid.Nil {
		return ErrEmptyFollowerID
	}

	if f.FollowerID == uuid.Nil || f.FollowedID == uuid.Nil {
		return ErrEmptyFollowerRef
	}

	if f.FollowerID == f.FollowedID {
		return ErrSelfFollow
	}

	return nil
}

// String returns the canonical representation used in logs.
func (f *Follower) String() string {
	return fmt.Sprintf("%s is following %s", f.FollowerID, f.FollowedID)
}
