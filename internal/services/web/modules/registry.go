// Package modules defines web module registry helpers.
package modules

import (
	module "github.com/gt-examples/apartment-listings/internal/services/web/module"
	"github.com/gt-examples/apartment-listings/internal/services/web/modules/listings"
)

// Mount aliases the module mount contract.
type Mount = module.Mount

// Module aliases the module interface contract.
type Module = module.Module

// Default returns the stable public web modules.
func Default(deps module.Dependencies) []Module {
	return []Module{
		listings.New(deps),
	}
}
