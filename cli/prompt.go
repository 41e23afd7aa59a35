package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// errInputClosed signals EOF on the input stream; the menu loop exits
// cleanly when it sees this.
var errInputClosed = errors.New("input closed")

func (a *App) readLine(label string) (string, error) {
	fmt.Fprintln(a.out, label)
	if !a.in.Scan() {
		if err := a.in.Err(); err != nil {
			return "", err
		}
		return "", errInputClosed
	}
	return strings.TrimSpace(a.in.Text()), nil
}

// promptText re-prompts until the user enters a non-blank value.
func (a *App) promptText(label string) (string, error) {
	for {
		value, err := a.readLine(label)
		if err != nil {
			return "", err
		}
		if value == "" {
			fmt.Fprintln(a.out, "This field cannot be blank.")
			continue
		}
		return value, nil
	}
}

// promptID re-prompts until the user enters a positive integer.
func (a *App) promptID(label string) (int64, error) {
	for {
		value, err := a.readLine(label)
		if err != nil {
			return 0, err
		}
		id, perr := strconv.ParseInt(value, 10, 64)
		if perr != nil || id <= 0 {
			fmt.Fprintln(a.out, "Invalid input. Please enter a positive number.")
			continue
		}
		return id, nil
	}
}

// promptQuantity re-prompts until the user enters a non-negative integer.
func (a *App) promptQuantity(label string) (int, error) {
	for {
		value, err := a.readLine(label)
		if err != nil {
			return 0, err
		}
		qty, perr := strconv.Atoi(value)
		if perr != nil {
			fmt.Fprintln(a.out, "Invalid input. Please enter a number.")
			continue
		}
		if qty < 0 {
			fmt.Fprintln(a.out, "Quantity cannot be negative.")
			continue
		}
		return qty, nil
	}
}

func (a *App) promptYesNo(label string) (bool, error) {
	for {
		value, err := a.readLine(label)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(value) {
		case "y":
			return true, nil
		case "n":
			return false, nil
		default:
			fmt.Fprintln(a.out, "Please enter 'y' or 'n'.")
		}
	}
}
