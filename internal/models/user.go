package models

import "time"

// User represents a stored application user.
//
// Password is stored and returned verbatim. The user listing exposes it;
// that is the published contract of this API, preserved intentionally rather
// than hardened in place.
type User struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	IP        string    `json:"ip"`
	CreatedAt time.Time `json:"created_at"`
}

// VisitorLog is the password-free projection of a user row served by the
// visitor log listing. Same table, narrower read model.
type VisitorLog struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	IP        string    `json:"ip"`
	CreatedAt time.Time `json:"created_at"`
}
