package models

import "time"

// Profile represents a user's one-time profile record.
// A stored profile is always complete: there is no draft state. The Firebase
// Auth UID is used as the Firestore document ID.
type Profile struct {
	ID              string    `json:"id" firestore:"-"`
	DisplayName     string    `json:"displayName" firestore:"displayName"`
	Birthdate       string    `json:"birthdate" firestore:"birthdate"`
	Email           string    `json:"email" firestore:"email"`
	ProfileComplete bool      `json:"profileComplete" firestore:"profileComplete"`
	JoinedDate      time.Time `json:"joinedDate" firestore:"joinedDate,serverTimestamp"`
}
