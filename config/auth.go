package config

import "fmt"

// AuthConfig selects how passwords are stored.
type AuthConfig struct {
	// Hasher is "plain" (stored as typed) or "bcrypt".
	Hasher string `json:"hasher"`
	// BcryptCost is the bcrypt work factor; 0 means the library default.
	BcryptCost int `json:"bcrypt_cost"`
}

func (c *AuthConfig) SetDefaults() {
	if c.Hasher == "" {
		c.Hasher = "plain"
	}
}

func (c AuthConfig) Validate() error {
	switch c.Hasher {
	case "plain", "bcrypt":
	default:
		return fmt.Errorf("unknown hasher %s", c.Hasher)
	}
	if c.BcryptCost != 0 && (c.BcryptCost < 4 || c.BcryptCost > 31) {
		return fmt.Errorf("bcrypt_cost %d outside [4,31]", c.BcryptCost)
	}
	return nil
}
