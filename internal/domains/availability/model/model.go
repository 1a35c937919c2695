package model

import (
	"agenda/shared/model"
)

const (
	TableName  = "availability_rules"
	EntityName = "availability_rule"

	FieldID        = "id"
	FieldDayOfWeek = "day_of_week"
	FieldStartTime = "start_time"
	FieldEndTime   = "end_time"
	FieldActive    = "active"
)

// AvailabilityRule marks a weekly one-hour attendance window. DayOfWeek
// holds the canonical Portuguese day name (Segunda ... Domingo) and the
// times are plain "HH:MM" strings.
type AvailabilityRule struct {
	ID        string `db:"id"`
	DayOfWeek string `db:"day_of_week"`
	StartTime string `db:"start_time"`
	EndTime   string `db:"end_time"`
	Active    bool   `db:"active"`
	model.Metadata
}
