package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	estatedomain "real-estate-go/internal/domain/estate"
	reportsdomain "real-estate-go/internal/domain/reports"
	"real-estate-go/pkg/logger"
)

// Console is the interactive text menu over the estate and reports services.
type Console struct {
	in      *bufio.Scanner
	out     io.Writer
	log     logger.Logger
	Estate  *estatedomain.Service
	Reports *reportsdomain.Service
}

func New(in io.Reader, out io.Writer, log logger.Logger, estate *estatedomain.Service, reports *reportsdomain.Service) *Console {
	return &Console{
		in:      bufio.NewScanner(in),
		out:     out,
		log:     log,
		Estate:  estate,
		Reports: reports,
	}
}

type menuItem struct {
	label  string
	action func(ctx context.Context) error
}

type menu struct {
	title string
	items []menuItem
	back  string
	bye   string
}

// Run shows the main menu until the user exits or the input ends.
func (c *Console) Run(ctx context.Context) error {
	err := c.runMenu(ctx, c.mainMenu())
	if errors.Is(err, errInputClosed) {
		c.println("\nInput closed. Goodbye!")
		return nil
	}
	return err
}

func (c *Console) mainMenu() menu {
	return menu{
		title: "Real Estate Management System",
		items: []menuItem{
			{label: "Add Menu...", action: func(ctx context.Context) error { return c.runMenu(ctx, c.addMenu()) }},
			{label: "Edit Menu...", action: func(ctx context.Context) error { return c.runMenu(ctx, c.editMenu()) }},
			{label: "Remove Menu...", action: func(ctx context.Context) error { return c.runMenu(ctx, c.removeMenu()) }},
			{label: "Read Menu...", action: func(ctx context.Context) error { return c.runMenu(ctx, c.readMenu()) }},
		},
		back: "Exit",
		bye:  "Goodbye!",
	}
}

func (c *Console) addMenu() menu {
	return menu{
		title: "Add Menu:",
		items: []menuItem{
			{label: "Add Owner", action: c.addOwner},
			{label: "Add Property", action: c.addProperty},
			{label: "Add Agency", action: c.addAgency},
			{label: "Add Listing", action: c.addListing},
		},
		back: "Return to Main Menu",
		bye:  "Returning to Main Menu...",
	}
}

func (c *Console) editMenu() menu {
	return menu{
		title: "Edit Menu:",
		items: []menuItem{
			{label: "Edit Owner", action: c.editOwner},
			{label: "Edit Property", action: c.editProperty},
			{label: "Edit Agency", action: c.editAgency},
			{label: "Edit Listing", action: c.editListing},
			{label: "Edit Address", action: c.editAddress},
			{label: "Edit City", action: c.editCity},
		},
		back: "Return to Main Menu",
		bye:  "Returning to Main Menu...",
	}
}

func (c *Console) removeMenu() menu {
	return menu{
		title: "Remove Menu:",
		items: []menuItem{
			{label: "Remove Owner", action: c.removeOwner},
			{label: "Remove Property", action: c.removeProperty},
			{label: "Remove Listing", action: c.removeListing},
		},
		back: "Return to Main Menu",
		bye:  "Returning to Main Menu...",
	}
}

func (c *Console) readMenu() menu {
	return menu{
		title: "Read Menu:",
		items: []menuItem{
			{label: "Search properties by city", action: c.searchByCity},
			{label: "View prices by registry number", action: c.pricesByRegistry},
			{label: "Advanced search", action: c.advancedSearch},
			{label: "Show all properties by category", action: func(ctx context.Context) error { return c.runMenu(ctx, c.showAllMenu()) }},
		},
		back: "Return to Main Menu",
		bye:  "Returning to Main Menu...",
	}
}

func (c *Console) showAllMenu() menu {
	return menu{
		title: "Show All Properties by:",
		items: []menuItem{
			{label: "Agency", action: c.showByAgency},
			{label: "Property", action: c.showAllProperties},
			{label: "Owners", action: c.showOwners},
		},
		back: "Return to Read Menu",
		bye:  "Returning to Read Menu...",
	}
}

func (c *Console) runMenu(ctx context.Context, m menu) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		c.println("\n" + m.title)
		for i, item := range m.items {
			c.printf("%d. %s\n", i+1, item.label)
		}
		c.printf("%d. %s\n", len(m.items)+1, m.back)

		choice, err := c.ask("Choose an option: ")
		if err != nil {
			return err
		}

		n, ok := parseChoice(choice, len(m.items)+1)
		switch {
		case !ok:
			c.println("Invalid choice. Please try again.")
		case n == len(m.items)+1:
			c.println(m.bye)
			return nil
		default:
			if err := m.items[n-1].action(ctx); err != nil {
				return err
			}
		}
	}
}

// report prints a failed operation and decides whether the menu can go on.
// Domain failures are shown to the user; only a closed input stops the loop.
func (c *Console) report(op string, err error) error {
	if errors.Is(err, errInputClosed) || errors.Is(err, context.Canceled) {
		return err
	}

	msg := "console." + strings.ReplaceAll(op, " ", "_") + ": failed"
	if isBusinessError(err) {
		c.log.BusinessError(msg, err)
		c.printf("Error: %v\n", err)
		return nil
	}

	c.log.InternalError(msg, err)
	c.printf("Error: internal error: %v\n", err)
	return nil
}

func isBusinessError(err error) bool {
	return errors.Is(err, estatedomain.ErrNotFound) ||
		errors.Is(err, estatedomain.ErrConstraintViolation) ||
		errors.Is(err, estatedomain.ErrValidation) ||
		errors.Is(err, estatedomain.ErrReferentialIntegrity)
}

func (c *Console) println(text string) {
	fmt.Fprintln(c.out, text)
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}
