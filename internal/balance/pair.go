package balance

import (
	"fmt"
	"unicode/utf8"
)

const (
	defaultOpenDelimiterConstant             = '{'
	defaultCloseDelimiterConstant            = '}'
	emptyDelimiterErrorTemplateConstant      = "%s delimiter must not be empty"
	multiRuneDelimiterErrorTemplateConstant  = "%s delimiter must be a single character, got %q"
	identicalDelimitersErrorTemplateConstant = "open and close delimiters must differ, both are %q"
	openDelimiterRoleNameConstant            = "open"
	closeDelimiterRoleNameConstant           = "close"
)

// Pair holds the opening and closing delimiter characters being balanced.
type Pair struct {
	Open  rune
	Close rune
}

// DefaultPair returns the curly brace delimiter pair.
func DefaultPair() Pair {
	return Pair{Open: defaultOpenDelimiterConstant, Close: defaultCloseDelimiterConstant}
}

// PairConfiguration captures persisted delimiter settings.
type PairConfiguration struct {
	Open  string `mapstructure:"open"`
	Close string `mapstructure:"close"`
}

// DefaultPairConfiguration returns configuration values matching DefaultPair.
func DefaultPairConfiguration() PairConfiguration {
	return PairConfiguration{
		Open:  string(defaultOpenDelimiterConstant),
		Close: string(defaultCloseDelimiterConstant),
	}
}

// Pair validates the configured delimiter strings and resolves them to runes.
func (configuration PairConfiguration) Pair() (Pair, error) {
	openRune, openError := singleRune(configuration.Open, openDelimiterRoleNameConstant)
	if openError != nil {
		return Pair{}, openError
	}

	closeRune, closeError := singleRune(configuration.Close, closeDelimiterRoleNameConstant)
	if closeError != nil {
		return Pair{}, closeError
	}

	if openRune == closeRune {
		return Pair{}, fmt.Errorf(identicalDelimitersErrorTemplateConstant, string(openRune))
	}

	return Pair{Open: openRune, Close: closeRune}, nil
}

func singleRune(candidate string, roleName string) (rune, error) {
	if len(candidate) == 0 {
		return 0, fmt.Errorf(emptyDelimiterErrorTemplateConstant, roleName)
	}

	decodedRune, decodedWidth := utf8.DecodeRuneInString(candidate)
	if decodedRune == utf8.RuneError || decodedWidth != len(candidate) {
		return 0, fmt.Errorf(multiRuneDelimiterErrorTemplateConstant, roleName, candidate)
	}

	return decodedRune, nil
}
