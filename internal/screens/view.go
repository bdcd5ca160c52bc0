package screens

import "github.com/appengine-ltd/cookie-tycoon/internal/game"

// Panel is the view of every text screen: a title, body lines and an
// optional input line.
type Panel struct {
	Title    string
	Subtitle string
	Lines    []string
	Prompt   string
	Input    string
	Message  string
	Loading  bool
}

// ShoppingRow is one ingredient line on the market screen.
type ShoppingRow struct {
	Name     string
	Unit     string
	Price    game.Money
	Owned    int
	InCart   int
	Needed   int
	Selected bool
}

type ShoppingView struct {
	Title   string
	Day     int
	Funds   game.Money
	Total   game.Money
	After   game.Money
	Rows    []ShoppingRow
	Query   string
	Message string
	Cookies int
}

// Frame is what an animation shows right now.
type Frame struct {
	Name    string
	Art     string
	Index   int
	Count   int
	Caption string
}
