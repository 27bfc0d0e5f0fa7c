package domain

import "time"

// Client models a managed client case: the business record an accountant
// maintains plus optional portal login credentials.
type Client struct {
	ID                int64
	BusinessName      string
	AccountantName    string
	ClientID          string // tax id / national id, unique business key
	Email             string
	Phone             string
	ContactPhone      string
	Address           string
	Zip               string
	BusinessType      string
	BankName          string
	BankBranch        string
	BankAccountNumber string
	AccountOwnerName  string
	LoginUsername     *string
	LoginPasswordHash *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// CanLogin reports whether portal access has been granted to this client.
func (c *Client) CanLogin() bool {
	return c.LoginUsername != nil && *c.LoginUsername != "" && c.LoginPasswordHash != nil
}
