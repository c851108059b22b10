package httpserver

import "net/http"

// Controller registers a group of related routes on the server's mux.
type Controller interface {
	AddRoutes(*http.ServeMux)
}
