package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

var (
	// Input source
	In io.Reader = os.Stdin

	reader *bufio.Reader
)

// SetInput replaces the input source and drops any buffered input.
func SetInput(r io.Reader) {
	In = r
	reader = nil
}

// readLine reads one line from In. A missing trailing newline or EOF
// yields whatever was read, possibly empty.
func readLine() string {
	if reader == nil {
		reader = bufio.NewReader(In)
	}
	response, _ := reader.ReadString('\n')
	return strings.TrimSpace(response)
}

// AskString prompts the user for a line of input and returns it trimmed.
func AskString(prompt string) string {
	_, _ = fmt.Fprint(Out, prompt)
	return readLine()
}

// AskSecret prompts for a value without echoing it when In is a terminal.
// Otherwise it behaves like AskString.
func AskSecret(prompt string) string {
	f, ok := In.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return AskString(prompt)
	}

	_, _ = fmt.Fprint(Out, prompt)
	secret, err := term.ReadPassword(int(f.Fd()))
	fmt.Fprintln(Out) // newline after hidden input
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(secret))
}

// Confirm prompts a yes/no question that defaults to no.
// Only "y" (any case, surrounding whitespace ignored) counts as yes.
func Confirm(prompt string) bool {
	return strings.ToLower(AskString(prompt)) == "y"
}
