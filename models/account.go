// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Account is a customer/contact record managed by the service.
//
// ID is assigned by the store on creation and never changes afterwards;
// every other field is replaced as a whole on update.
type Account struct {
	// ID is the server-assigned identifier. Values sent by clients are ignored.
	ID int64 `json:"id"`

	// Name is the display name of the account holder.
	Name string `json:"name" validate:"required"`

	// Email is the contact e-mail address.
	Email string `json:"email" validate:"required"`

	// Address is the postal address.
	Address string `json:"address" validate:"required"`

	// PhoneNumber is the contact phone number in free form.
	PhoneNumber string `json:"phone_number" validate:"required"`

	// DateJoined is the calendar date the account was opened.
	DateJoined Date `json:"date_joined" validate:"required"`
}

// TableName returns the name of the database table
// associated with the Account model.
func (a Account) TableName() string {
	return "accounts"
}
