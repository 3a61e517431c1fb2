package command

import (
	"strings"

	"github.com/yaklabco/stringutils/pkg/transform"
)

// Prefix is the namespace accepted in front of a command name.
const Prefix = "string-utils:"

// Env carries the editor settings a transform may read.
type Env struct {
	TabLength   int
	ReverseUnit transform.ReverseUnit
}

// Func is a pure text transform. It returns ok=false when the input is not
// acceptable and the buffer must be left alone, or an error when the input
// is malformed.
type Func func(text string, env Env) (out string, ok bool, err error)

// Command is one entry of the command table.
type Command struct {
	Op          Op
	Name        string
	Aliases     []string
	Description string
	Fallback    bool
	SoftTabs    SoftTabsEffect
	Transform   Func
}

//nolint:gochecknoglobals // Static command table.
var table = [opCount]Command{
	OpReverseSelection: {
		Op:          OpReverseSelection,
		Name:        "reverse-selection",
		Aliases:     []string{"reverse"},
		Description: "Reverse the characters of each selected line",
		Transform: func(text string, env Env) (string, bool, error) {
			return transform.ReverseBy(env.ReverseUnit, text), true, nil
		},
	},
	OpSpacesToTabs: {
		Op:          OpSpacesToTabs,
		Name:        "convert-spaces-to-tabs",
		Aliases:     []string{"spaces-to-tabs"},
		Description: "Convert the leading run of spaces on each line to tabs",
		Fallback:    true,
		SoftTabs:    SoftTabsOff,
		Transform: func(text string, env Env) (string, bool, error) {
			return transform.SpacesToTabs(text, env.TabLength), true, nil
		},
	},
	OpTabsToSpaces: {
		Op:          OpTabsToSpaces,
		Name:        "convert-tabs-to-spaces",
		Aliases:     []string{"tabs-to-spaces"},
		Description: "Convert the leading run of tabs on each line to spaces",
		Fallback:    true,
		SoftTabs:    SoftTabsOn,
		Transform: func(text string, env Env) (string, bool, error) {
			return transform.TabsToSpaces(text, env.TabLength), true, nil
		},
	},
	OpEncodeBase64: {
		Op:          OpEncodeBase64,
		Name:        "encode-base64",
		Aliases:     []string{"encode-to-base64"},
		Description: "Encode the selection as base64",
		Transform: func(text string, _ Env) (string, bool, error) {
			return transform.EncodeBase64(text), true, nil
		},
	},
	OpDecodeBase64: {
		Op:          OpDecodeBase64,
		Name:        "decode-base64",
		Aliases:     []string{"decode-from-base64"},
		Description: "Decode a base64 selection",
		Transform: func(text string, _ Env) (string, bool, error) {
			out, ok := transform.DecodeBase64(text)
			return out, ok, nil
		},
	},
	OpEncodeURL: {
		Op:          OpEncodeURL,
		Name:        "encode-url",
		Aliases:     []string{"encode-to-url"},
		Description: "Percent-encode the selection",
		Transform: func(text string, _ Env) (string, bool, error) {
			return transform.EncodeURL(text), true, nil
		},
	},
	OpDecodeURL: {
		Op:          OpDecodeURL,
		Name:        "decode-url",
		Aliases:     []string{"decode-from-url"},
		Description: "Decode a percent-encoded selection",
		Transform: func(text string, _ Env) (string, bool, error) {
			out, err := transform.DecodeURL(text)
			if err != nil {
				return "", false, err
			}
			return out, true, nil
		},
	},
}

// Commands returns the command table in Op order.
func Commands() []Command {
	out := make([]Command, len(table))
	copy(out, table[:])
	return out
}

// Lookup returns the table entry for op.
func Lookup(op Op) (Command, bool) {
	if op < 0 || op >= opCount {
		return Command{}, false
	}
	return table[op], true
}

// Resolve finds a command by name or alias, with or without Prefix.
func Resolve(name string) (Command, bool) {
	name = strings.TrimPrefix(strings.TrimSpace(name), Prefix)
	for _, c := range table {
		if c.Name == name {
			return c, true
		}
		for _, alias := range c.Aliases {
			if alias == name {
				return c, true
			}
		}
	}
	return Command{}, false
}
