// Package cli runs the interactive inventory menu.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/rogerio-castellano/inventory-cli/internal/auth"
	"github.com/rogerio-castellano/inventory-cli/internal/input"
	"github.com/rogerio-castellano/inventory-cli/internal/models"
	"github.com/rogerio-castellano/inventory-cli/internal/repo"
)

const (
	optionAdd = iota + 1
	optionEditByName
	optionDeleteByName
	optionList
	optionEditAt
	optionDeleteAt
	optionExit
)

// Menu drives the store from operator input.
type Menu struct {
	products repo.ProductRepository
	prompt   *input.Prompter
	out      io.Writer
	logger   *slog.Logger
}

func NewMenu(products repo.ProductRepository, prompt *input.Prompter, out io.Writer, logger *slog.Logger) *Menu {
	if logger == nil {
		logger = slog.Default()
	}
	return &Menu{products: products, prompt: prompt, out: out, logger: logger}
}

// Login asks for an operator name until it resolves to a known role.
func (m *Menu) Login() (models.Operator, error) {
	for {
		fmt.Fprintln(m.out, "\n-- Operators: admin, empleado, contador --")
		name, err := m.prompt.Line("Username: ")
		if err != nil {
			return models.Operator{}, err
		}
		op, err := auth.ResolveOperator(name)
		if err != nil {
			fmt.Fprintln(m.out, "Error: incorrect username.")
			continue
		}
		fmt.Fprintf(m.out, "Logged in as %s (%s).\n", op.Username, op.Role)
		m.logger.Info("operator logged in", "username", op.Username, "role", op.Role)
		return op, nil
	}
}

// Run shows the main menu until the operator exits or input ends.
// End of input is a normal exit.
func (m *Menu) Run() error {
	for {
		m.printMenu()
		option, err := m.prompt.IntInRange("Select an option: ", optionAdd, optionExit)
		if err != nil {
			return endOfInput(err)
		}
		if option == optionExit {
			fmt.Fprintln(m.out, "\nExiting...")
			return nil
		}
		if err := m.dispatch(option); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			m.report(err)
		}
	}
}

func (m *Menu) printMenu() {
	fmt.Fprintln(m.out, "\n-- Main menu --")
	fmt.Fprintln(m.out, "1. Add product")
	fmt.Fprintln(m.out, "2. Edit product by name")
	fmt.Fprintln(m.out, "3. Delete product by name")
	fmt.Fprintln(m.out, "4. List products")
	fmt.Fprintln(m.out, "5. Edit product by position")
	fmt.Fprintln(m.out, "6. Delete product by position")
	fmt.Fprintln(m.out, "7. Exit")
}

func (m *Menu) dispatch(option int) error {
	switch option {
	case optionAdd:
		return m.add()
	case optionEditByName:
		return m.editByName()
	case optionDeleteByName:
		return m.deleteByName()
	case optionList:
		m.list()
		return nil
	case optionEditAt:
		return m.editAt()
	case optionDeleteAt:
		return m.deleteAt()
	}
	return nil
}

func (m *Menu) add() error {
	if len(m.products.List()) >= m.products.Capacity() {
		return repo.ErrCapacityExceeded
	}
	p, err := m.readProduct("Product name: ", "Quantity: ", "Price: ")
	if err != nil {
		return err
	}
	if _, err := m.products.Add(p.Name, p.Quantity, p.Price); err != nil {
		return err
	}
	fmt.Fprintln(m.out, "Product added.")
	return nil
}

func (m *Menu) editByName() error {
	name, err := m.prompt.Text("Name of the product to edit: ")
	if err != nil {
		return err
	}
	if _, err := m.products.FindByName(name); err != nil {
		return err
	}
	p, err := m.readProduct("New product name: ", "New quantity: ", "New price: ")
	if err != nil {
		return err
	}
	if _, err := m.products.EditByName(name, p); err != nil {
		return err
	}
	fmt.Fprintln(m.out, "Product edited.")
	return nil
}

func (m *Menu) deleteByName() error {
	name, err := m.prompt.Text("Name of the product to delete: ")
	if err != nil {
		return err
	}
	if err := m.products.DeleteByName(name); err != nil {
		return err
	}
	fmt.Fprintln(m.out, "Product deleted.")
	return nil
}

func (m *Menu) editAt() error {
	index, err := m.readIndex("Position of the product to edit: ")
	if err != nil {
		return err
	}
	p, err := m.readProduct("New product name: ", "New quantity: ", "New price: ")
	if err != nil {
		return err
	}
	if _, err := m.products.EditAt(index, p); err != nil {
		return err
	}
	fmt.Fprintln(m.out, "Product edited.")
	return nil
}

func (m *Menu) deleteAt() error {
	index, err := m.readIndex("Position of the product to delete: ")
	if err != nil {
		return err
	}
	if err := m.products.DeleteAt(index); err != nil {
		return err
	}
	fmt.Fprintln(m.out, "Product deleted.")
	return nil
}

func (m *Menu) list() {
	products := m.products.List()
	if len(products) == 0 {
		fmt.Fprintln(m.out, "The inventory is empty.")
		return
	}
	for _, p := range products {
		fmt.Fprintf(m.out, "Product %d: %s, Quantity: %d, Price: %.2f\n", p.Index, p.Name, p.Quantity, p.Price)
	}
}

func (m *Menu) readIndex(prompt string) (int, error) {
	n := len(m.products.List())
	if n == 0 {
		return 0, repo.ErrIndexOutOfRange
	}
	return m.prompt.IntInRange(prompt, 0, n-1)
}

func (m *Menu) readProduct(namePrompt, quantityPrompt, pricePrompt string) (models.Product, error) {
	name, err := m.prompt.Text(namePrompt)
	if err != nil {
		return models.Product{}, err
	}
	quantity, err := m.prompt.NonNegativeInt(quantityPrompt)
	if err != nil {
		return models.Product{}, err
	}
	price, err := m.prompt.NonNegativeFloat(pricePrompt)
	if err != nil {
		return models.Product{}, err
	}
	return models.Product{Name: name, Quantity: quantity, Price: price}, nil
}

func (m *Menu) report(err error) {
	switch {
	case errors.Is(err, repo.ErrCapacityExceeded):
		fmt.Fprintln(m.out, "Error: the inventory is full.")
	case errors.Is(err, repo.ErrProductNotFound):
		fmt.Fprintln(m.out, "Error: product not found.")
	case errors.Is(err, repo.ErrIndexOutOfRange):
		fmt.Fprintln(m.out, "Error: there is no product at that position.")
	default:
		m.logger.Error("inventory operation failed", "error", err)
		fmt.Fprintf(m.out, "Error: the change was not saved: %v\n", err)
	}
}

func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
