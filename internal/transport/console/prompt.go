package console

import (
	"errors"
	"strconv"
	"strings"
)

var errInputClosed = errors.New("input closed")

func (c *Console) ask(label string) (string, error) {
	c.printf("%s", label)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", errInputClosed
	}
	return strings.TrimSpace(c.in.Text()), nil
}

// askOptional returns nil for a blank answer.
func (c *Console) askOptional(label string) (*string, error) {
	value, err := c.ask(label)
	if err != nil {
		return nil, err
	}
	if value == "" {
		return nil, nil
	}
	return &value, nil
}

func (c *Console) askID(label string) (int64, error) {
	for {
		value, err := c.ask(label)
		if err != nil {
			return 0, err
		}
		id, err := strconv.ParseInt(value, 10, 64)
		if err == nil && id > 0 {
			return id, nil
		}
		c.println("Invalid input. Please enter a valid numeric ID.")
	}
}

func (c *Console) askFloat(label string) (float64, error) {
	for {
		value, err := c.ask(label)
		if err != nil {
			return 0, err
		}
		parsed, err := strconv.ParseFloat(value, 64)
		if err == nil {
			return parsed, nil
		}
		c.println("Invalid input. Please enter a number.")
	}
}

// askOptionalFloat returns nil for a blank answer.
func (c *Console) askOptionalFloat(label string) (*float64, error) {
	for {
		value, err := c.ask(label)
		if err != nil {
			return nil, err
		}
		if value == "" {
			return nil, nil
		}
		parsed, err := strconv.ParseFloat(value, 64)
		if err == nil {
			return &parsed, nil
		}
		c.println("Invalid input. Please enter a number or leave blank.")
	}
}

// askPriceEdit reads a replacement listing price. Listing prices are nullable,
// so a blank answer clears the price instead of keeping it.
func (c *Console) askPriceEdit(label string) (*float64, bool, error) {
	value, err := c.askOptionalFloat(label)
	if err != nil {
		return nil, false, err
	}
	return value, value == nil, nil
}

func (c *Console) askYesNo(label string) (bool, error) {
	for {
		value, err := c.ask(label)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(value) {
		case "yes", "y":
			return true, nil
		case "no", "n":
			return false, nil
		}
		c.println("Invalid input. Please enter 'yes' or 'no'.")
	}
}

func parseChoice(value string, limit int) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n < 1 || n > limit {
		return 0, false
	}
	return n, true
}
