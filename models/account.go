// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Account is a user of the server. The account also serves as the
// authenticated principal of a request; a nil *Account is anonymous.
type Account struct {
	ID           int64       `json:"id"`
	Username     string      `json:"username"`
	PasswordHash string      `json:"-"`
	IsAdmin      bool        `json:"is_admin"`
	Permissions  Permissions `json:"permissions"`
}

// TableName returns the name of the database table
// associated with the Account model.
func (a Account) TableName() string {
	return "accounts"
}

// Grant returns the grant held under key.
func (a *Account) Grant(key PermissionKey) (Grant, bool) {
	if a == nil {
		return Grant{}, false
	}
	grant, ok := a.Permissions[key]
	return grant, ok
}
