package bw

import (
	"fmt"
	"strings"

	kerrors "github.com/bwx-cli/bwx/internal/errors"
)

// Well-known field names accepted by Item.Field. Anything else is looked up
// among the item's custom fields.
const (
	FieldPassword = "password"
	FieldUsername = "username"
	FieldURI      = "uri"
	FieldNotes    = "notes"
)

// Item is the subset of the upstream item JSON that bwx reads.
type Item struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	FolderID string  `json:"folderId"`
	Notes    string  `json:"notes"`
	Login    *Login  `json:"login,omitempty"`
	Fields   []Field `json:"fields,omitempty"`
}

type Login struct {
	Username string `json:"username"`
	Password string `json:"password"`
	TOTP     string `json:"totp"`
	URIs     []URI  `json:"uris"`
}

type URI struct {
	URI string `json:"uri"`
}

// Field is a custom item field. Type 1 is "hidden" in the upstream model;
// bwx treats all types the same since it only ever prints or copies values.
type Field struct {
	Name  string `json:"name"`
	Value string `json:"value"`
	Type  int    `json:"type"`
}

type Folder struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Field returns the named field's value. Built-in names (password, username,
// uri, notes) read from the login/notes structure; any other name is matched
// case-insensitively against custom fields.
func (i Item) Field(name string) (string, error) {
	switch strings.ToLower(name) {
	case FieldPassword:
		if i.Login == nil || i.Login.Password == "" {
			return "", fmt.Errorf("%w: %s has no password", kerrors.ErrFieldNotFound, i.Name)
		}
		return i.Login.Password, nil
	case FieldUsername:
		if i.Login == nil || i.Login.Username == "" {
			return "", fmt.Errorf("%w: %s has no username", kerrors.ErrFieldNotFound, i.Name)
		}
		return i.Login.Username, nil
	case FieldURI:
		if i.Login == nil || len(i.Login.URIs) == 0 || i.Login.URIs[0].URI == "" {
			return "", fmt.Errorf("%w: %s has no URI", kerrors.ErrFieldNotFound, i.Name)
		}
		return i.Login.URIs[0].URI, nil
	case FieldNotes:
		if i.Notes == "" {
			return "", fmt.Errorf("%w: %s has no notes", kerrors.ErrFieldNotFound, i.Name)
		}
		return i.Notes, nil
	}

	for _, field := range i.Fields {
		if strings.EqualFold(field.Name, name) {
			return field.Value, nil
		}
	}
	return "", fmt.Errorf("%w: %s has no field %q", kerrors.ErrFieldNotFound, i.Name, name)
}

// Username returns the login username, or "" if the item has none.
func (i Item) Username() string {
	if i.Login == nil {
		return ""
	}
	return i.Login.Username
}

// HasTOTP reports whether the item carries a TOTP seed.
func (i Item) HasTOTP() bool {
	return i.Login != nil && i.Login.TOTP != ""
}

// SearchText is the haystack the picker's fuzzy matcher runs over.
func (i Item) SearchText() string {
	parts := []string{i.Name}
	if username := i.Username(); username != "" {
		parts = append(parts, username)
	}
	return strings.Join(parts, " ")
}

// FolderName resolves the item's folder name from a folder listing.
// Items outside any folder return "".
func (i Item) FolderName(folders []Folder) string {
	if i.FolderID == "" {
		return ""
	}
	for _, folder := range folders {
		if folder.ID == i.FolderID {
			return folder.Name
		}
	}
	return ""
}
