// File: internal/domain/user.go
package domain

import "time"

// User holds the profile fields this core needs. Authentication and the rest
// of profile CRUD live in an external collaborator; the only field the core
// reads and writes is the persisted postal code used to seed provider queries.
type User struct {
	ID         uint   `gorm:"primarykey"`
	Username   string `gorm:"uniqueIndex"`
	PostalCode string // last known 5-digit ZIP, best-effort persisted
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
