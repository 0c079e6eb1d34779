package model

import "github.com/google/uuid"

// Profile is the public projection of a user record. These four fields
// are the only user data that may ever be inlined into feed output;
// credentials and tokens stay behind the identity service.
type Profile struct {
	ID          uuid.UUID
	DisplayName string
	Handle      string
	AvatarKey   string
}
