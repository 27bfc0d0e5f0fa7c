package dto

// CreateClientRequest payload for opening a new client case.
type CreateClientRequest struct {
	BusinessName  string `json:"businessName"`
	TaxID         string `json:"taxId"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	Zip           string `json:"zip"`
	ClientType    string `json:"clientType"`
	BankName      string `json:"bankName"`
	BankBranch    string `json:"bankBranch"`
	BankNumber    string `json:"bankNumber"`
	BankOwnerName string `json:"bankOwnerName"`
}

// CreateClientResponse reports creation outcome.
type CreateClientResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ClientGridItem is the summary row shown in the clients grid.
type ClientGridItem struct {
	BusinessName string `json:"businessName"`
	ClientID     string `json:"clientId"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
}

// LoadClientsResponse lists the accountant's clients.
type LoadClientsResponse struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	Clients []ClientGridItem `json:"clients"`
}

// ClientCaseDetails is the full editable case record.
type ClientCaseDetails struct {
	ClientID          string `json:"clientId"`
	BusinessName      string `json:"businessName"`
	Email             string `json:"email"`
	Phone             string `json:"phone"`
	Address           string `json:"address"`
	Zip               string `json:"zip"`
	BusinessType      string `json:"businessType"`
	BankName          string `json:"bankName"`
	BankBranch        string `json:"bankBranch"`
	BankAccountNumber string `json:"bankAccountNumber"`
}

// LoadCaseDetailsResponse carries the case header summary.
type LoadCaseDetailsResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	BusinessName string `json:"businessName"`
	ClientID     string `json:"clientId"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	BusinessType string `json:"businessType"`
}

// UpdateClientResponse confirms an update.
type UpdateClientResponse struct {
	Message string `json:"message"`
}

// ClientCountResponse carries the dashboard counter.
type ClientCountResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Count   int    `json:"count"`
}

// GrantAccessRequest assigns portal credentials to a client.
type GrantAccessRequest struct {
	ClientID string `json:"clientId"`
	Username string `json:"username"`
	Password string `json:"password"`
}
