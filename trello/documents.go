package trello

import "time"

// The structs below mirror the JSON documents the Trello API returns for the
// field selections in the board and card URL templates. Fields the summary
// mapper cannot do without are pointers so their absence is detectable.

// Label is one coloured label attached to a card.
type Label struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Member is a Trello user assigned to a card.
type Member struct {
	Username string `json:"username"`
}

// CheckItem is a single entry of a checklist. State is "complete" or
// "incomplete"; Pos is Trello's fractional ordering key.
type CheckItem struct {
	Name  string  `json:"name"`
	State string  `json:"state"`
	Pos   float64 `json:"pos"`
}

// Checklist is a named group of check items on a card.
type Checklist struct {
	Name       string      `json:"name"`
	Pos        float64     `json:"pos"`
	CheckItems []CheckItem `json:"checkItems"`
}

// NamedRef is a nested reference carrying only a name, such as the card's
// parent board and list.
type NamedRef struct {
	Name string `json:"name"`
}

// Card is the fetched document for a card link.
type Card struct {
	Name        *string     `json:"name"`
	Desc        *string     `json:"desc"`
	Closed      *bool       `json:"closed"`
	Due         *time.Time  `json:"due"`
	DueComplete bool        `json:"dueComplete"`
	Members     []Member    `json:"members"`
	Labels      []Label     `json:"labels"`
	Checklists  []Checklist `json:"checklists"`
	Board       *NamedRef   `json:"board"`
	List        *NamedRef   `json:"list"`
}

// Board is the fetched document for a board link.
type Board struct {
	Name   *string `json:"name"`
	Desc   *string `json:"desc"`
	Closed *bool   `json:"closed"`
	Prefs  struct {
		BackgroundBottomColor string `json:"backgroundBottomColor"`
	} `json:"prefs"`
}
