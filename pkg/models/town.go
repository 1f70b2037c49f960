package models

// Town is a player town.
type Town struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Level       int     `json:"level"`
	LeaderID    *int    `json:"leader_id,omitempty"`
	QQGroup     *string `json:"qq_group,omitempty"`
	Description *string `json:"description,omitempty"`
	CreatedAt   Time    `json:"created_at"`
	UpdatedAt   Time    `json:"updated_at"`
}

// TownsListData is a page of towns.
type TownsListData struct {
	Towns []Town `json:"towns"`
	PageInfo
}

func (d *TownsListData) Items() []Town { return d.Towns }

func (d *TownsListData) SetItems(items []Town) { d.Towns = items }

// TownMembersData is a page of a town's members.
type TownMembersData struct {
	Members []Player `json:"members"`
	PageInfo
}

func (d *TownMembersData) Items() []Player { return d.Members }

func (d *TownMembersData) SetItems(items []Player) { d.Members = items }

// TownDetailResponse is a town together with its leader's ID and members.
type TownDetailResponse struct {
	Town    Town     `json:"town"`
	Leader  *int     `json:"leader,omitempty"`
	Members []Player `json:"members"`
}
