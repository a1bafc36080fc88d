// Package term implements the interactive credential prompt. The password
// is read with input echo suppressed when stdin is a terminal.
package term

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fwojciec/tabrip"
	"golang.org/x/term"
)

// Ensure Prompter implements tabrip.CredentialSource at compile time.
var _ tabrip.CredentialSource = (*Prompter)(nil)

// Prompter reads credentials interactively. Each call prompts again, so a
// failed login attempt re-asks the user.
type Prompter struct {
	in           io.Reader
	out          io.Writer
	reader       *bufio.Reader
	readPassword func(fd int) ([]byte, error)
}

// NewPrompter creates a Prompter reading from stdin and prompting on
// stderr, so prompts stay visible when stdout is redirected.
func NewPrompter() *Prompter {
	return &Prompter{
		in:           os.Stdin,
		out:          os.Stderr,
		readPassword: term.ReadPassword,
	}
}

// NewPrompterWithIO creates a Prompter with explicit streams. The password
// is read in the clear, which is only suitable for tests and pipes.
func NewPrompterWithIO(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: in, out: out}
}

// Credentials prompts for a username and a password.
func (p *Prompter) Credentials(ctx context.Context) (tabrip.Credentials, error) {
	if err := ctx.Err(); err != nil {
		return tabrip.Credentials{}, err
	}
	if p.reader == nil {
		p.reader = bufio.NewReader(p.in)
	}

	fmt.Fprint(p.out, "Enter your username: ")
	username, err := p.readLine()
	if err != nil {
		return tabrip.Credentials{}, tabrip.Errorf(tabrip.EINVALID, "reading username: %v", err)
	}

	fmt.Fprint(p.out, "Enter your password: ")
	password, err := p.readSecret()
	if err != nil {
		return tabrip.Credentials{}, tabrip.Errorf(tabrip.EINVALID, "reading password: %v", err)
	}

	return tabrip.Credentials{Username: username, Password: password}, nil
}

func (p *Prompter) readLine() (string, error) {
	line, err := p.reader.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// readSecret suppresses echo when reading from a terminal and falls back
// to a plain line read otherwise.
func (p *Prompter) readSecret() (string, error) {
	if f, ok := p.in.(*os.File); ok && p.readPassword != nil && term.IsTerminal(int(f.Fd())) {
		b, err := p.readPassword(int(f.Fd()))
		fmt.Fprintln(p.out)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	return p.readLine()
}
