// Package module defines the contract every mounted module satisfies
package module

import (
	"net/http"

	"recordkeeper/internal/modkit/httpkit"
)

// Module is the minimal contract the API mounter needs
type Module interface {
	Name() string
	Prefix() string
	Middlewares() []func(http.Handler) http.Handler
	MountRoutes(r httpkit.Router)
}
