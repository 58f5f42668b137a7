package client

import "time"

// Client - a customer of the staffing agency
type Client struct {
	ID          string
	Name        string
	Address     *string
	City        *string
	StateCode   string
	GSTIN       *string
	PAN         *string
	ContactName *string
	Phone       *string
	Email       *string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Unit - one site/location of a client where staff are posted
type Unit struct {
	ID        string
	ClientID  string
	Name      string
	Address   *string
	City      *string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
