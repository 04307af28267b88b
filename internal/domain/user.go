package domain

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserRole string

const (
	RoleRealtor UserRole = "realtor"
	RoleRegular UserRole = "regular"
)

type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username     string             `bson:"username" json:"username"`
	Email        string             `bson:"email" json:"email"`
	FullName     string             `bson:"full_name" json:"full_name"`
	Disabled     bool               `bson:"disabled" json:"disabled"`
	Role         UserRole           `bson:"user_type" json:"user_type"`
	PasswordHash string             `bson:"hashed_password" json:"-"`
}

func (User) Collection() string {
	return "users"
}
