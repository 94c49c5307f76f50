// Copyright (c) 2026 Giftwell. All rights reserved.
// Author: dev@giftwell.app

package country

import "context"

// Repository defines the data access contract.
type Repository interface {
	ListCountries(context context.Context) ([]*Country, error)
	GetCountryByID(context context.Context, id int) (*Country, error)
	CreateCountry(context context.Context, country *Country) error
	DeleteCountry(context context.Context, id int) error
}
