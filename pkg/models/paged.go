package models

// PageInfo is the pagination metadata of a list response.
type PageInfo struct {
	Total    int `json:"total"`
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

// Info returns the page metadata.
func (p PageInfo) Info() PageInfo { return p }

// HasMore reports whether pages exist after this one.
func (p PageInfo) HasMore() bool {
	return p.PageSize > 0 && p.Page*p.PageSize < p.Total
}

// Paged is a page of a larger collection. The API names the items field after
// the resource ("players", "servers"); Items and SetItems read and write that
// same field, so the two views never drift apart.
type Paged[T any] interface {
	Items() []T
	SetItems(items []T)
	Info() PageInfo
}

var (
	_ Paged[Player]         = (*PlayersListData)(nil)
	_ Paged[ServerRegistry] = (*ServersListData)(nil)
	_ Paged[Town]           = (*TownsListData)(nil)
	_ Paged[Player]         = (*TownMembersData)(nil)
	_ Paged[IPInfo]         = (*IPsListData)(nil)
	_ Paged[OnlinePlayer]   = (*ServerPlayersData)(nil)
)
