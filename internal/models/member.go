package models

import "time"

type Member struct {
	ID            int64     `json:"id" db:"id"`
	Name          string    `json:"name" db:"name"`
	Username      string    `json:"username" db:"username"`
	PasswordHash  string    `json:"-" db:"password_hash"`
	FollowerCount int64     `json:"follower_count" db:"follower_count"`
	Time          time.Time `json:"time" db:"time"`
}
