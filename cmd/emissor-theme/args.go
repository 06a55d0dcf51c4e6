package main

import (
	"strconv"
	"strings"

	"emissor/internal/color"
	appErrors "emissor/internal/errors"
)

// colorInput turns a command line argument into a value color.Parse accepts:
// a hex string as is, or a comma separated channel list.
func colorInput(arg string) (any, error) {
	if !strings.Contains(arg, ",") {
		return strings.TrimSpace(arg), nil
	}
	parts := strings.Split(arg, ",")
	values := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, appErrors.New(appErrors.CodeValidation, "invalid channel value "+strconv.Quote(p), err)
		}
		values[i] = v
	}
	return values, nil
}

func parseColorArg(arg string) (color.Color, error) {
	in, err := colorInput(arg)
	if err != nil {
		return color.Color{}, err
	}
	return color.Parse(in)
}
