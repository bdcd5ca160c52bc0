package screens

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/appengine-ltd/cookie-tycoon/internal/audio"
	"github.com/appengine-ltd/cookie-tycoon/internal/game"
	"github.com/appengine-ltd/cookie-tycoon/internal/loop"
	"github.com/appengine-ltd/cookie-tycoon/internal/parser"
	"github.com/appengine-ltd/cookie-tycoon/internal/scene"
)

const (
	ActionCheckout   = "checkout"
	ActionClearCart  = "clear"
	ActionAddRecipe  = "add_recipe"
	actionAddPrefix  = "add:"
	actionDropPrefix = "remove:"
	maxQueryLen      = 16
)

type Shopping struct {
	base
	econ     game.Economy
	prices   game.PriceList
	player   game.PlayerState
	names    []string
	cart     game.Cart
	selected int
	query    string
	message  string
	done     func(game.Cart)
}

// NewShopping opens the market at today's prices. It completes with the
// cart; paying for it is the caller's job.
func NewShopping(d scene.Deps, econ game.Economy, prices game.PriceList, p game.PlayerState, done func(game.Cart)) *Shopping {
	s := &Shopping{
		econ:   econ,
		prices: prices,
		player: p.Clone(),
		names:  econ.Catalog().Names(),
		cart:   game.Cart{},
		done:   done,
	}
	s.init(d, "shopping", s)
	s.listen(s.handleKey)
	return s
}

func (s *Shopping) handleKey(k loop.Key) bool {
	if !s.alive {
		return false
	}
	switch k.Code {
	case loop.KeyUp:
		s.move(-1)
	case loop.KeyDown:
		s.move(1)
	case loop.KeyRight:
		s.Add(s.Selected(), 1)
	case loop.KeyLeft:
		s.Add(s.Selected(), -1)
	case loop.KeyTab:
		s.quickSelect()
	case loop.KeyBackspace:
		if len(s.query) > 0 {
			s.query = s.query[:len(s.query)-1]
		}
	case loop.KeyEnter:
		s.Checkout()
	case loop.KeyRune:
		switch {
		case k.Rune == '+':
			s.Add(s.Selected(), 1)
		case k.Rune == '-':
			s.Add(s.Selected(), -1)
		case unicode.IsLetter(k.Rune) || k.Rune == ' ':
			if len(s.query) < maxQueryLen {
				s.query += string(k.Rune)
			}
		default:
			return false
		}
	default:
		return false
	}
	return true
}

func (s *Shopping) move(delta int) {
	if len(s.names) == 0 {
		return
	}
	s.selected = (s.selected + delta + len(s.names)) % len(s.names)
}

func (s *Shopping) quickSelect() {
	if strings.TrimSpace(s.query) == "" {
		return
	}
	name, ok := parser.Closest(s.query, s.names)
	if !ok {
		s.message = fmt.Sprintf("Nothing here called %q", s.query)
		return
	}
	s.Select(name)
	s.query = ""
}

// Select moves the cursor to the named ingredient.
func (s *Shopping) Select(name string) bool {
	for i, n := range s.names {
		if n == name {
			s.selected = i
			s.message = ""
			return true
		}
	}
	return false
}

func (s *Shopping) Selected() string {
	if len(s.names) == 0 {
		return ""
	}
	return s.names[s.selected]
}

// Add changes the cart quantity of name by delta, never below zero.
func (s *Shopping) Add(name string, delta int) {
	if name == "" {
		return
	}
	if _, ok := s.prices.Lookup(name); !ok {
		return
	}
	n := s.cart[name] + delta
	if n <= 0 {
		delete(s.cart, name)
	} else {
		s.cart[name] = n
	}
	s.message = ""
}

// AddRecipe puts one cookie's worth of every ingredient in the cart.
func (s *Shopping) AddRecipe() {
	recipe := s.econ.Recipe()
	for _, name := range recipe.RecipeNames() {
		s.Add(name, recipe.Ingredients[name])
	}
}

func (s *Shopping) Cart() game.Cart {
	out := make(game.Cart, len(s.cart))
	for k, v := range s.cart {
		out[k] = v
	}
	return out
}

func (s *Shopping) Total() game.Money {
	total, err := s.cart.Total(s.prices)
	if err != nil {
		return 0
	}
	return total
}

// Checkout completes with the cart, or rejects it inline when it costs
// more than the player has.
func (s *Shopping) Checkout() {
	if !s.alive {
		return
	}
	total, err := s.cart.Total(s.prices)
	if err != nil {
		s.message = err.Error()
		return
	}
	if total > s.player.Funds {
		s.message = fmt.Sprintf("Not enough money: the cart is %s and you have %s", total, s.player.Funds)
		s.deps.Sound().Play(audio.CueWrong)
		return
	}
	cart := s.Cart()
	s.complete(func() { s.done(cart) })
}

func (s *Shopping) Message() string {
	return s.message
}

func (s *Shopping) View() any {
	recipe := s.econ.Recipe()
	v := ShoppingView{
		Title:   "Market",
		Day:     s.player.CurrentDay,
		Funds:   s.player.Funds,
		Total:   s.Total(),
		Query:   s.query,
		Message: s.message,
	}
	v.After = v.Funds - v.Total
	stock := s.player.Ingredients.Clone()
	for i, name := range s.names {
		unit, _ := s.prices.Lookup(name)
		row := ShoppingRow{
			Name:     name,
			Price:    unit,
			Owned:    s.player.Ingredients[name],
			InCart:   s.cart[name],
			Needed:   recipe.Ingredients[name],
			Selected: i == s.selected,
		}
		if ing, ok := s.econ.Catalog().Ingredient(name); ok {
			row.Unit = ing.Unit
		}
		stock[name] += row.InCart
		v.Rows = append(v.Rows, row)
	}
	v.Cookies = s.econ.MaxCookies(stock)
	return v
}

func (s *Shopping) Actions() []scene.Action {
	acts := []scene.Action{
		{ID: ActionCheckout, Label: "Check out", Key: loop.Code(loop.KeyEnter), Enabled: true},
		{ID: ActionAddRecipe, Label: "Add one recipe", Enabled: true},
		{ID: ActionClearCart, Label: "Empty cart", Key: loop.Code(loop.KeyEscape), Enabled: len(s.cart) > 0},
	}
	for _, name := range s.names {
		acts = append(acts,
			scene.Action{ID: actionAddPrefix + name, Label: "+", Enabled: true},
			scene.Action{ID: actionDropPrefix + name, Label: "-", Enabled: s.cart[name] > 0},
		)
	}
	return acts
}

func (s *Shopping) Act(id string) {
	switch {
	case id == ActionCheckout:
		s.Checkout()
	case id == ActionAddRecipe:
		s.AddRecipe()
	case id == ActionClearCart:
		s.cart = game.Cart{}
		s.query = ""
		s.message = ""
	case strings.HasPrefix(id, actionAddPrefix):
		name := strings.TrimPrefix(id, actionAddPrefix)
		s.Select(name)
		s.Add(name, 1)
	case strings.HasPrefix(id, actionDropPrefix):
		name := strings.TrimPrefix(id, actionDropPrefix)
		s.Select(name)
		s.Add(name, -1)
	}
}

// AddActionID and RemoveActionID name the per-ingredient buttons.
func AddActionID(name string) string    { return actionAddPrefix + name }
func RemoveActionID(name string) string { return actionDropPrefix + name }
