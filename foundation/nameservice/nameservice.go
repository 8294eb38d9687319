// Package nameservice maps simulated addresses to display names for the
// accounts the player knows about.
package nameservice

import "strings"

// NameService maintains a map of addresses for name lookup.
type NameService struct {
	accounts map[string]string
}

// New constructs a name service from an address book of address to name.
func New(book map[string]string) *NameService {
	ns := NameService{
		accounts: make(map[string]string, len(book)),
	}

	for address, name := range book {
		address = strings.TrimSpace(address)
		if address == "" || name == "" {
			continue
		}
		ns.accounts[address] = name
	}

	return &ns
}

// Lookup returns the name for the specified address. Unknown addresses are
// returned as is.
func (ns *NameService) Lookup(address string) string {
	if ns == nil {
		return address
	}

	name, exists := ns.accounts[address]
	if !exists {
		return address
	}
	return name
}

// Copy returns a copy of the map of addresses and names.
func (ns *NameService) Copy() map[string]string {
	cpy := make(map[string]string, len(ns.accounts))
	for address, name := range ns.accounts {
		cpy[address] = name
	}
	return cpy
}
