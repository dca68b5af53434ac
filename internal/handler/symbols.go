package handler

import (
	"errors"
	"regexp"
	"strings"

	"quant-sentiment/internal/service"
)

var symbolPattern = regexp.MustCompile(`^[A-Z]{1,6}$`)

var (
	errNoSymbols      = errors.New("No valid symbols provided")
	errInvalidSymbols = errors.New("each value in symbols must match /^[A-Z]{1,6}$/ regular expression")
)

// ParseSymbols turns "aapl, MSFT,,aapl" into [AAPL MSFT]. Any malformed symbol
// rejects the whole list. Order is kept, duplicates dropped, and the result is
// capped at service.MaxSymbols.
func ParseSymbols(raw string) ([]string, error) {
	var symbols []string
	for _, part := range strings.Split(raw, ",") {
		s := strings.ToUpper(strings.TrimSpace(part))
		if s == "" {
			continue
		}
		if !symbolPattern.MatchString(s) {
			return nil, errInvalidSymbols
		}
		symbols = append(symbols, s)
	}
	if len(symbols) == 0 {
		return nil, errNoSymbols
	}

	seen := make(map[string]struct{}, len(symbols))
	unique := symbols[:0]
	for _, s := range symbols {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		unique = append(unique, s)
	}
	if len(unique) > service.MaxSymbols {
		unique = unique[:service.MaxSymbols]
	}
	return unique, nil
}
