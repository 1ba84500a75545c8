package models

import "time"

// StatusCheck is a client health-check ping stored in Firestore.
type StatusCheck struct {
	ID         string    `firestore:"id" json:"id"`
	ClientName string    `firestore:"clientName" json:"client_name"`
	Timestamp  time.Time `firestore:"timestamp" json:"timestamp"`
}
