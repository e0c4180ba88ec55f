package domain

import (
	"errors"
	"strings"
)

var (
	ErrEmptyName    = errors.New("customer name is required")
	ErrEmptyEmail   = errors.New("customer email is required")
	ErrInvalidEmail = errors.New("email must contain '@'")
)

// Customer represents a bookstore customer entity.
type Customer struct {
	ID    int64
	Name  string
	Email string
	Phone string
}

// NewCustomer builds a customer ensuring required invariants.
func NewCustomer(id int64, name, email, phone string) (*Customer, error) {
	customer := &Customer{ID: id, Phone: strings.TrimSpace(phone)}
	if err := customer.SetName(name); err != nil {
		return nil, err
	}
	if err := customer.SetEmail(email); err != nil {
		return nil, err
	}
	return customer, nil
}

// SetName trims and validates the customer name.
func (c *Customer) SetName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	c.Name = name
	return nil
}

// SetEmail trims and validates the email address.
func (c *Customer) SetEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrEmptyEmail
	}
	if !strings.Contains(email, "@") {
		return ErrInvalidEmail
	}
	c.Email = email
	return nil
}

// Validate enforces invariants on the entity.
func (c *Customer) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrEmptyName
	}
	if strings.TrimSpace(c.Email) == "" {
		return ErrEmptyEmail
	}
	if !strings.Contains(c.Email, "@") {
		return ErrInvalidEmail
	}
	return nil
}
