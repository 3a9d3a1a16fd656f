package utils

import "github.com/mohamedfathy32/elnaseem-crm/config"

// IsProduction reports whether the app runs with ENV=production.
func IsProduction() bool {
	return config.IsProduction()
}
