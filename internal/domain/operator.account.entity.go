package domain

import "time"

type OperatorAccount struct {
	ID        string
	Email     string
	FullName  string
	Role      string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
