// Package script replays navigation scripts against a coordinator tree.
//
// A script is a TOML file listing steps:
//
//	name = "unwind to red"
//	root = "orange_book"
//	screens = ["red_book", "green_book", "blue_book"]
//
//	[[step]]
//	op = "push"
//	screen = "red_book"
//
//	[[step]]
//	op = "register"
//	kind = "unwind"
//	id = "unwindToRedBook"
//
//	[[step]]
//	op = "push"
//	screen = "green_book"
//
//	[[step]]
//	op = "unwind"
//	id = "unwindToRedBook"
//	value = "hello"
//
//	[[step]]
//	op = "expect"
//	path = ["red_book"]
//
// The Runner plays the part of the presentation layer: it creates a child
// coordinator whenever a modal is presented and discards it once the modal
// is dismissed. Every op acts on the innermost coordinator.
package script

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Script is a decoded navigation script.
type Script struct {
	Name    string   `toml:"name"`
	Root    string   `toml:"root"`
	Screens []string `toml:"screens"` // Optional allow-list for push and present
	Steps   []Step   `toml:"step"`
}

// Step is one navigation command. Which fields are used depends on Op.
type Step struct {
	Op     string    `toml:"op"`
	Screen string    `toml:"screen"`
	Kind   string    `toml:"kind"`
	ID     string    `toml:"id"`
	Value  *string   `toml:"value"` // nil sends no payload
	Path   *[]string `toml:"path"`  // expect: nil skips the path check
	Modal  *string   `toml:"modal"` // expect: "" asserts no modal, nil skips the check
}

// Ops understood by a default Runner.
const (
	OpPush      = "push"
	OpPop       = "pop"
	OpPopToRoot = "pop_to_root"
	OpRegister  = "register"
	OpUnwind    = "unwind"
	OpPresent   = "present"
	OpDismiss   = "dismiss"
	OpExpect    = "expect"
)

// Parse decodes a script from TOML.
func Parse(data []byte) (*Script, error) {
	var s Script
	md, err := toml.Decode(string(data), &s)
	if err != nil {
		return nil, fmt.Errorf("failed to decode script: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: unknown key %q", ErrInvalidStep, undecoded[0].String())
	}
	return &s, nil
}

// Load reads and decodes a script file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = path
	}
	return s, nil
}
