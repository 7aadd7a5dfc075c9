package players

import (
	"database/sql"
	"sync"
)

// store handles all database operations for the player catalog.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Player represents a single catalog entry. The store may hold several
// entries sharing the same name; deduplication is the query engine's job,
// not a storage constraint.
type Player struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Country        string `json:"country,omitempty"`
	Age            *int   `json:"age,omitempty"`
	DateOfBirth    string `json:"dateOfBirth,omitempty"`
	Nickname       string `json:"nickname,omitempty"`
	Ranking        *int   `json:"ranking,omitempty"`
	TourCard       string `json:"tourCard,omitempty"`
	CareerEarnings string `json:"careerEarnings,omitempty"`
}

// Field names a column the store can report distinct values for.
type Field string

const (
	FieldCountry  Field = "country"
	FieldNickname Field = "nickname"
)
