package models

import (
	"time"
)

// User is read-only from this service's perspective; account management
// owns the collection.
type User struct {
	ID          string    `firestore:"id" json:"id"`
	Email       string    `firestore:"email" json:"email"`
	DisplayName string    `firestore:"displayName" json:"displayName"`
	CreatedAt   time.Time `firestore:"createdAt" json:"createdAt"`
}
