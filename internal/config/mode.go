package config

import "fmt"

type Mode int

const (
	// Print every token of the line until EOF.
	MODE_TOKENS Mode = iota
	// Parse the line and print the program and its diagnostics.
	MODE_AST
)

func ParseMode(s string) (Mode, error) {
	switch s {
	case "tokens", "":
		return MODE_TOKENS, nil
	case "ast":
		return MODE_AST, nil
	}
	return MODE_TOKENS, fmt.Errorf("unknown mode %q, expected tokens or ast", s)
}

func (m Mode) String() string {
	switch m {
	case MODE_TOKENS:
		return "tokens"
	case MODE_AST:
		return "ast"
	}
	return "unknown"
}

func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Mode) UnmarshalText(text []byte) error {
	mode, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}
