package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Roles stored on UserData. Customers book trips; admins manage packages
// and booking statuses.
const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

type UserData struct {
	Id             primitive.ObjectID `json:"_id" bson:"_id"`
	Login          string             `json:"login" bson:"login,omitempty"`
	HashedPassword string             `json:"password_hash" bson:"password_hash,omitempty"`
	Role           string             `json:"role" bson:"role,omitempty"`
}
