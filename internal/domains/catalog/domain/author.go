package domain

import "strings"

// Author represents a catalog author entity.
type Author struct {
	ID   int64
	Name string
	Bio  string
}

// NewAuthor builds an author ensuring required invariants.
func NewAuthor(id int64, name, bio string) (*Author, error) {
	author := &Author{ID: id, Bio: strings.TrimSpace(bio)}
	if err := author.SetName(name); err != nil {
		return nil, err
	}
	return author, nil
}

// SetName trims and validates the author name.
func (a *Author) SetName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyAuthorName
	}
	a.Name = name
	return nil
}

// Validate enforces invariants on the entity.
func (a *Author) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return ErrEmptyAuthorName
	}
	return nil
}
