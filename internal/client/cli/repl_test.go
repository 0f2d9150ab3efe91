package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	args  [][]string
	fail  string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }

func (f *fakeExec) record(name string, args []string) error {
	f.calls = append(f.calls, name)
	f.args = append(f.args, args)
	if name == f.fail {
		return errors.New("boom")
	}
	return nil
}

func (f *fakeExec) Login(_ context.Context, args []string) error {
	f.loggedIn = true
	return f.record("login", args)
}
func (f *fakeExec) Logout(_ context.Context, args []string) error {
	f.loggedIn = false
	return f.record("logout", args)
}
func (f *fakeExec) NewTour(_ context.Context, a []string) error   { return f.record("newtour", a) }
func (f *fakeExec) Title(_ context.Context, a []string) error     { return f.record("title", a) }
func (f *fakeExec) Bookmarks(_ context.Context, a []string) error { return f.record("bookmarks", a) }
func (f *fakeExec) Days(_ context.Context, a []string) error      { return f.record("days", a) }
func (f *fakeExec) Day(_ context.Context, a []string) error       { return f.record("day", a) }
func (f *fakeExec) City(_ context.Context, a []string) error      { return f.record("city", a) }
func (f *fakeExec) ConfirmCity(_ context.Context, a []string) error {
	return f.record("confirm", a)
}
func (f *fakeExec) CancelCity(_ context.Context, a []string) error { return f.record("cancel", a) }
func (f *fakeExec) Items(_ context.Context, a []string) error      { return f.record("items", a) }
func (f *fakeExec) Toggle(_ context.Context, a []string) error     { return f.record("toggle", a) }
func (f *fakeExec) Organize(_ context.Context, a []string) error   { return f.record("organize", a) }
func (f *fakeExec) ContinueEmpty(_ context.Context, a []string) error {
	return f.record("continue", a)
}
func (f *fakeExec) FillEmpty(_ context.Context, a []string) error { return f.record("fill", a) }
func (f *fakeExec) Order(_ context.Context, a []string) error     { return f.record("order", a) }
func (f *fakeExec) Drag(_ context.Context, a []string) error      { return f.record("drag", a) }
func (f *fakeExec) Move(_ context.Context, a []string) error      { return f.record("move", a) }
func (f *fakeExec) Save(_ context.Context, a []string) error      { return f.record("save", a) }
func (f *fakeExec) Draft(_ context.Context, a []string) error     { return f.record("draft", a) }
func (f *fakeExec) Tours(_ context.Context, a []string) error     { return f.record("tours", a) }
func (f *fakeExec) Tour(_ context.Context, a []string) error      { return f.record("tour", a) }
func (f *fakeExec) Monuments(_ context.Context, a []string) error { return f.record("monuments", a) }
func (f *fakeExec) Restaurants(_ context.Context, a []string) error {
	return f.record("restaurants", a)
}
func (f *fakeExec) Exchanges(_ context.Context, a []string) error { return f.record("exchanges", a) }
func (f *fakeExec) ESIMs(_ context.Context, a []string) error     { return f.record("esims", a) }
func (f *fakeExec) BuyESIM(_ context.Context, a []string) error   { return f.record("buyesim", a) }

func capturePrints(t *testing.T) *[]string {
	t.Helper()
	var printed []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		printed = append(printed, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &printed
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	printed := capturePrints(t)

	input := strings.Join([]string{
		"help",
		"days",
		"login",
		"help",
		`newtour "Imperial cities" 2024/06/01 2024/06/05`,
		"city Fes",
		"toggle jemaa 2",
		"",
		"foobar",
		"exit",
		"days",
	}, "\n")

	exec := &fakeExec{}
	src := newPlainSource(strings.NewReader(input), io.Discard)
	runREPL(context.Background(), exec, func() string { return " [x]" }, src)

	assert.Equal(t, []string{"login", "newtour", "city", "toggle"}, exec.calls)
	assert.Equal(t, []string{"Imperial cities", "2024/06/01", "2024/06/05"}, exec.args[1])
	assert.Equal(t, []string{"jemaa", "2"}, exec.args[3])

	assert.Contains(t, *printed, helpLoggedOut)
	assert.Contains(t, *printed, "Please login first.")
	assert.Contains(t, *printed, helpLoggedIn)
	assert.Contains(t, *printed, "Unknown command: foobar")
	assert.Equal(t, "Bye!", (*printed)[len(*printed)-1])
	assert.Equal(t, "tours [x]> ", src.prompt)
}

func TestRunREPL_PrintsHandlerErrors(t *testing.T) {
	printed := capturePrints(t)

	exec := &fakeExec{loggedIn: true, fail: "save"}
	src := newPlainSource(strings.NewReader("save\nquit\n"), io.Discard)
	runREPL(context.Background(), exec, func() string { return "" }, src)

	assert.Equal(t, []string{"save"}, exec.calls)
	assert.Equal(t, []string{"Error: boom", "Bye!"}, *printed)
}

func TestRunREPL_StopsAtEOF(t *testing.T) {
	printed := capturePrints(t)

	exec := &fakeExec{loggedIn: true}
	src := newPlainSource(strings.NewReader("tours"), io.Discard)
	runREPL(context.Background(), exec, func() string { return "" }, src)

	assert.Equal(t, []string{"tours"}, exec.calls)
	assert.Empty(t, *printed)
}

func TestHandler_AliasesCityAnswers(t *testing.T) {
	exec := &fakeExec{loggedIn: true}
	for _, cmd := range []string{"confirm", "cancel", "continue", "fill", "esims"} {
		h, ok := handler(exec, cmd)
		if assert.True(t, ok, cmd) {
			assert.NoError(t, h(context.Background(), nil))
		}
	}
	assert.Equal(t, []string{"confirm", "cancel", "continue", "fill", "esims"}, exec.calls)

	_, ok := handler(exec, "get")
	assert.False(t, ok)
}
