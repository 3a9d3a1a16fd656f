package handlers

import (
	userRepo "github.com/mohamedfathy32/elnaseem-crm/database/repository/user"
)

// HandlerBundle groups the endpoint handlers for route registration. The
// user repository rides along for the auth middleware's actor lookup.
type HandlerBundle struct {
	UserRepo userRepo.UserRepository

	Clients   *ClientHandler
	Employees *EmployeeHandler
	Stats     *StatsHandler
	Settings  *SettingsHandler
	Storage   *StorageHandler
}
