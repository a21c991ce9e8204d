// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/lazypass/lazypass/internal/secret"
)

// TermPrompt reads phrases from a terminal with echo disabled. When in is
// not a terminal, for example a pipe, it reads one line instead.
type TermPrompt struct {
	in  io.Reader
	out io.Writer
}

var _ Prompter = (*TermPrompt)(nil)

func NewTermPrompt(in io.Reader, out io.Writer) *TermPrompt {
	return &TermPrompt{in: in, out: out}
}

func (p *TermPrompt) ReadPhrase(prompt string) (string, error) {
	if f, ok := p.in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(p.out, prompt)
		b, err := term.ReadPassword(int(f.Fd()))
		defer secret.Wipe(b)
		fmt.Fprintln(p.out)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}

	line, err := bufio.NewReader(p.in).ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
