package views

import (
	"fmt"
	"io"
)

// Welcome is the entry screen offering the Sign-Up, Log-In, and Browse
// actions. It calls no API.
type Welcome struct {
	out io.Writer
}

func NewWelcome(out io.Writer) *Welcome {
	return &Welcome{out: out}
}

func (v *Welcome) Render() {
	fmt.Fprintln(v.out, "Welcome to myFlix!")
	fmt.Fprintln(v.out, "  signup - create an account")
	fmt.Fprintln(v.out, "  login  - log in")
	fmt.Fprintln(v.out, "  movies - browse the catalog")
	fmt.Fprintln(v.out, "  quit   - exit")
}
