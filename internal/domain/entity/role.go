package entity

import (
	"fmt"
	"strings"
)

// Role is the closed set of account kinds. The zero value is not a valid role.
type Role uint8

const (
	// RoleCustomer orders juice from nearby shops.
	RoleCustomer Role = iota + 1
	// RoleShopkeeper operates a machine and fulfils orders.
	RoleShopkeeper
	// RoleAdmin reviews shop registrations.
	RoleAdmin
)

// ParseRole converts the wire representation into a Role.
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "customer":
		return RoleCustomer, nil
	case "shopkeeper":
		return RoleShopkeeper, nil
	case "admin":
		return RoleAdmin, nil
	default:
		return 0, fmt.Errorf("unknown role %q", s)
	}
}

// String returns the wire representation of the Role.
func (r Role) String() string {
	switch r {
	case RoleCustomer:
		return "customer"
	case RoleShopkeeper:
		return "shopkeeper"
	case RoleAdmin:
		return "admin"
	default:
		return "unknown"
	}
}

// IsValid checks if the Role is one of the declared values.
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleShopkeeper, RoleAdmin:
		return true
	default:
		return false
	}
}

// LandingPath is the dashboard a client should route a signed-in user to.
func (r Role) LandingPath() string {
	switch r {
	case RoleCustomer:
		return "/customer"
	case RoleShopkeeper:
		return "/shopkeeper"
	case RoleAdmin:
		return "/admin"
	default:
		return "/"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (r Role) MarshalText() ([]byte, error) {
	if !r.IsValid() {
		return nil, fmt.Errorf("invalid role %d", r)
	}

	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Role) UnmarshalText(text []byte) error {
	role, err := ParseRole(string(text))
	if err != nil {
		return err
	}
	*r = role

	return nil
}
