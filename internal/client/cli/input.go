package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"golang.org/x/term"
)

// isTerminal and readPassword are test seams for golang.org/x/term.
var (
	isTerminal   = term.IsTerminal
	readPassword = term.ReadPassword
)

// lineSource is where the REPL reads from: a readline instance on a terminal,
// a plain reader otherwise (pipes, scripts, tests).
type lineSource interface {
	Readline() (string, error)
	SetPrompt(prompt string)
	// ReadSecret reads one line without echo when possible.
	ReadSecret(prompt string) ([]byte, error)
	Close() error
}

// newLineSource picks readline when stdin is a terminal.
func newLineSource(historyFile string, out io.Writer) (lineSource, error) {
	if !isTerminal(int(os.Stdin.Fd())) {
		return newPlainSource(os.Stdin, out), nil
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "tours> ",
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize readline: %w", err)
	}
	return &readlineSource{rl: rl}, nil
}

type readlineSource struct {
	rl *readline.Instance
}

func (r *readlineSource) Readline() (string, error) {
	line, err := r.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		return "", errInterrupt
	}
	return line, err
}

func (r *readlineSource) SetPrompt(p string) { r.rl.SetPrompt(p) }

func (r *readlineSource) ReadSecret(prompt string) ([]byte, error) {
	return r.rl.ReadPassword(prompt)
}

func (r *readlineSource) Close() error { return r.rl.Close() }

// errInterrupt is returned by Readline on Ctrl-C.
var errInterrupt = errors.New("interrupted")

type plainSource struct {
	reader *bufio.Reader
	out    io.Writer
	prompt string
	fd     int
}

func newPlainSource(in io.Reader, out io.Writer) *plainSource {
	fd := -1
	if f, ok := in.(*os.File); ok {
		fd = int(f.Fd())
	}
	return &plainSource{reader: bufio.NewReader(in), out: out, fd: fd}
}

// Readline returns the next line without its newline. A last line without a
// newline is returned before io.EOF.
func (p *plainSource) Readline() (string, error) {
	if p.prompt != "" {
		fmt.Fprint(p.out, p.prompt)
	}
	line, err := p.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (p *plainSource) SetPrompt(prompt string) { p.prompt = prompt }

func (p *plainSource) ReadSecret(prompt string) ([]byte, error) {
	fmt.Fprint(p.out, prompt)
	if p.fd >= 0 && isTerminal(p.fd) {
		pw, err := readPassword(p.fd)
		fmt.Fprintln(p.out)
		return pw, err
	}
	line, err := p.reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && len(line) > 0) {
		return nil, err
	}
	return []byte(strings.TrimSpace(line)), nil
}

func (p *plainSource) Close() error { return nil }

// parseArgs splits a command line on spaces. Double quotes group words.
func parseArgs(input string) []string {
	var (
		args    []string
		current strings.Builder
		quoted  bool
		hasArg  bool
	)
	for _, r := range input {
		switch {
		case r == '"':
			quoted = !quoted
			hasArg = true
		case (r == ' ' || r == '\t') && !quoted:
			if hasArg {
				args = append(args, current.String())
				current.Reset()
				hasArg = false
			}
		default:
			current.WriteRune(r)
			hasArg = true
		}
	}
	if hasArg {
		args = append(args, current.String())
	}
	return args
}
