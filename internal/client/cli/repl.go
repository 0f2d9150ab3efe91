package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to. *App satisfies it;
// tests provide a recording stub.
type execIface interface {
	isLoggedIn() bool

	Login(ctx context.Context, args []string) error
	Logout(ctx context.Context, args []string) error

	NewTour(ctx context.Context, args []string) error
	Title(ctx context.Context, args []string) error
	Bookmarks(ctx context.Context, args []string) error
	Days(ctx context.Context, args []string) error
	Day(ctx context.Context, args []string) error
	City(ctx context.Context, args []string) error
	ConfirmCity(ctx context.Context, args []string) error
	CancelCity(ctx context.Context, args []string) error
	Items(ctx context.Context, args []string) error
	Toggle(ctx context.Context, args []string) error
	Organize(ctx context.Context, args []string) error
	ContinueEmpty(ctx context.Context, args []string) error
	FillEmpty(ctx context.Context, args []string) error
	Order(ctx context.Context, args []string) error
	Drag(ctx context.Context, args []string) error
	Move(ctx context.Context, args []string) error
	Save(ctx context.Context, args []string) error
	Draft(ctx context.Context, args []string) error

	Tours(ctx context.Context, args []string) error
	Tour(ctx context.Context, args []string) error

	Monuments(ctx context.Context, args []string) error
	Restaurants(ctx context.Context, args []string) error
	Exchanges(ctx context.Context, args []string) error
	ESIMs(ctx context.Context, args []string) error
	BuyESIM(ctx context.Context, args []string) error
}

const helpLoggedOut = `Available commands:
  login [refresh-token]        authenticate (prompts when no token is given)
  help | exit`

const helpLoggedIn = `Planning:
  newtour "<title>" <start> <end>   start a draft (dates YYYY/MM/DD)
  title "<title>"                   rename the draft
  bookmarks                         reload bookmarked items
  days                              list days with their city and items
  day <n>                           select a day
  city <name>                       set the selected day's city
  confirm | cancel                  answer a pending city change
  items                             items available on the selected day
  toggle <item-id> [day]            select or deselect an item
  organize                          validate days and build the timeline
  continue | fill                   answer the empty-days warning
Ordering:
  order [day]                       show the timeline
  drag <day> <item-id> <position>   drag an item to a position
  move <day> <from> <to>            move by positions
  save                              save the tour
  draft save|restore|discard        local draft snapshot
Browsing:
  tours | tour <id>
  monuments [city] | restaurants [city] | exchanges | esims
  buyesim <esim-id> <email>
  logout | help | exit`

// runREPL reads commands from src until EOF or "exit"/"quit". The prompt is
// refreshed from statusFn before every line. Handler errors are printed and
// the loop goes on.
func runREPL(ctx context.Context, a execIface, statusFn func() string, src lineSource) {
	for {
		src.SetPrompt(fmt.Sprintf("tours%s> ", statusFn()))
		line, err := src.Readline()
		if err != nil {
			if errors.Is(err, errInterrupt) {
				printlnFn("Use 'exit' or 'quit' to leave.")
				continue
			}
			if !errors.Is(err, io.EOF) {
				printlnFn("Error:", err)
			}
			return
		}

		parts := parseArgs(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if cmd == "exit" || cmd == "quit" {
			printlnFn("Bye!")
			return
		}
		if cmd == "help" {
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}
			continue
		}

		h, ok := handler(a, cmd)
		if !ok {
			printlnFn("Unknown command:", cmd)
			continue
		}
		if cmd != "login" && !a.isLoggedIn() {
			printlnFn("Please login first.")
			continue
		}
		if err := h(ctx, args); err != nil {
			printlnFn("Error:", err)
		}
	}
}

func handler(a execIface, cmd string) (func(context.Context, []string) error, bool) {
	handlers := map[string]func(context.Context, []string) error{
		"login":       a.Login,
		"logout":      a.Logout,
		"newtour":     a.NewTour,
		"title":       a.Title,
		"bookmarks":   a.Bookmarks,
		"days":        a.Days,
		"day":         a.Day,
		"city":        a.City,
		"confirm":     a.ConfirmCity,
		"cancel":      a.CancelCity,
		"items":       a.Items,
		"toggle":      a.Toggle,
		"organize":    a.Organize,
		"continue":    a.ContinueEmpty,
		"fill":        a.FillEmpty,
		"order":       a.Order,
		"drag":        a.Drag,
		"move":        a.Move,
		"save":        a.Save,
		"draft":       a.Draft,
		"tours":       a.Tours,
		"tour":        a.Tour,
		"monuments":   a.Monuments,
		"restaurants": a.Restaurants,
		"exchanges":   a.Exchanges,
		"esims":       a.ESIMs,
		"buyesim":     a.BuyESIM,
	}
	h, ok := handlers[cmd]
	return h, ok
}
