package model

import "agenda/shared/model"

const (
	TableName  = "users"
	EntityName = "user"

	FieldID        = "id"
	FieldEmail     = "email"
	FieldPassword  = "password"
	FieldLevel     = "level"
	FieldName      = "name"
	FieldLastLogin = "last_login"
	FieldActive    = "active"
)

// User is a practitioner account. The practice runs with a single admin
// in day to day use, the table still supports more than one.
type User struct {
	ID        string  `db:"id"`
	Email     string  `db:"email"`
	Password  string  `db:"password"`
	Level     string  `db:"level"`
	Name      *string `db:"name"`
	LastLogin *string `db:"last_login"`
	Active    bool    `db:"active"`
	model.Metadata
}
