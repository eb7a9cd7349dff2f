// Package iocli is the console seam of the CLI: everything printed or read
// interactively goes through IO, so commands can be tested without a terminal.
package iocli

//go:generate moq -out io_mock.go . IO

// IO is the terminal used by CLI commands. Write lets tables and cobra help
// text be rendered into the same output.
type IO interface {
	Println(a ...any)
	Printf(format string, a ...any)
	ReadInput(prompt string) (string, error)
	ReadPassword(prompt string) (string, error)
	Write(p []byte) (n int, err error)
}
