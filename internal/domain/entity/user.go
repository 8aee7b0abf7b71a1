package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a registered user in the system. The email is the natural
// key: at most one user document exists per email, enforced by an existence
// check before insert rather than a storage constraint.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email     string             `bson:"email" json:"email"`
	Name      string             `bson:"name,omitempty" json:"name,omitempty"`
	PhotoURL  string             `bson:"photoURL,omitempty" json:"photoURL,omitempty"`
	Role      UserRole           `bson:"role" json:"role"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// UserRole represents the entitlement level of a user. The only transition is
// user -> premium, performed when a checkout session is confirmed as paid.
type UserRole string

const (
	UserRoleUser    UserRole = "user"
	UserRolePremium UserRole = "premium"
)

func DefaultRole() UserRole {
	return UserRoleUser
}
