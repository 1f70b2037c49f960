package models

// ApiToken is an API credential. The secret value is never included; it is
// only returned once, by token creation.
type ApiToken struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Role        string  `json:"role"`
	Description *string `json:"description,omitempty"`
	Active      bool    `json:"active"`
	ExpireAt    *Time   `json:"expire_at,omitempty"`
	LastUsedAt  *Time   `json:"last_used_at,omitempty"`
	LastUsedIP  *string `json:"last_used_ip,omitempty"`
	CreatedAt   Time    `json:"created_at"`
	UpdatedAt   Time    `json:"updated_at"`
}

// CreateApiTokenData is returned by token creation.
type CreateApiTokenData struct {
	TokenInfo ApiToken `json:"token_info"`

	// TokenValue is the secret. The server does not return it again.
	TokenValue string `json:"token_value"`
}

// ListApiTokensData lists every token.
type ListApiTokensData struct {
	Tokens []ApiToken `json:"tokens"`
}
