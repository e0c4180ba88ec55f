package domain

import (
	"errors"
	"strings"
)

var ErrEmptyCategoryName = errors.New("category name is required")

// Category represents a catalog category entity.
type Category struct {
	ID   int64
	Name string
}

// NewCategory builds a category ensuring required invariants.
func NewCategory(id int64, name string) (*Category, error) {
	category := &Category{ID: id}
	if err := category.SetName(name); err != nil {
		return nil, err
	}
	return category, nil
}

// SetName trims and validates the category name.
func (c *Category) SetName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyCategoryName
	}
	c.Name = name
	return nil
}

// Validate enforces invariants on the entity.
func (c *Category) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrEmptyCategoryName
	}
	return nil
}
