package http

import (
	"net/http"
)

// RegisterDocumentationHttp serves the OpenAPI document on an open route so
// consumers can read the API surface before requesting a key.
func RegisterDocumentationHttp(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/documentation", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(openApiDocument))
	})
}

const openApiDocument = `{
  "openapi": "3.0.3",
  "info": {
    "title": "Event Ticket API",
    "version": "1.0.0",
    "description": "Event ticketing backend. All routes except /health, /api/request, /api/documentation and /api/download-tickets/{orderNumber} require a Bearer API key."
  },
  "components": {
    "securitySchemes": {
      "apiKey": {"type": "http", "scheme": "bearer"}
    }
  },
  "security": [{"apiKey": []}],
  "paths": {
    "/health": {
      "get": {"summary": "Liveness check", "security": [], "responses": {"200": {"description": "OK"}}}
    },
    "/api/request": {
      "post": {"summary": "Request an API key, delivered by email", "security": [], "responses": {"201": {"description": "Request received"}, "422": {"description": "Validation failed"}}}
    },
    "/api/events": {
      "get": {"summary": "List upcoming events, paginated by date", "responses": {"200": {"description": "OK"}}},
      "post": {"summary": "Create an event", "responses": {"201": {"description": "Created"}, "422": {"description": "Validation failed"}}}
    },
    "/api/events/{id}": {
      "get": {"summary": "Show an event", "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}},
      "put": {"summary": "Update an event", "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}},
      "delete": {"summary": "Delete an event", "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}}
    },
    "/api/events/{eventId}/ticket-types": {
      "get": {"summary": "List the ticket types of an event", "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}}
    },
    "/api/ticket-types": {
      "post": {"summary": "Create a ticket type", "responses": {"201": {"description": "Created"}, "422": {"description": "Validation failed"}}}
    },
    "/api/ticket-types/{id}": {
      "get": {"summary": "Show a ticket type", "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}},
      "put": {"summary": "Update a ticket type", "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}},
      "delete": {"summary": "Delete a ticket type", "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}}
    },
    "/api/order-intents": {
      "get": {"summary": "List order intents", "responses": {"200": {"description": "OK"}}},
      "post": {"summary": "Create an order intent", "responses": {"201": {"description": "Created"}, "422": {"description": "Validation failed"}}}
    },
    "/api/order-intents/{id}": {
      "get": {"summary": "Show an order intent", "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}},
      "put": {"summary": "Update an order intent", "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}},
      "delete": {"summary": "Delete an order intent", "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}}
    },
    "/api/order-intents/clean-expired": {
      "post": {"summary": "Delete expired order intents and report the count", "responses": {"200": {"description": "OK"}}}
    },
    "/api/validate-order-intent/{id}": {
      "post": {"summary": "Convert a pending intent into an order and its ticket", "responses": {"200": {"description": "Order issued"}, "400": {"description": "Workflow failed"}, "404": {"description": "Not found"}, "409": {"description": "Intent already being validated"}}}
    },
    "/api/orders": {
      "get": {"summary": "List orders", "responses": {"200": {"description": "OK"}}},
      "post": {"summary": "Create an order", "responses": {"201": {"description": "Created"}, "422": {"description": "Validation failed"}}}
    },
    "/api/orders/{id}": {
      "get": {"summary": "Show an order", "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}},
      "put": {"summary": "Update an order", "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}},
      "delete": {"summary": "Delete an order", "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}}
    },
    "/api/orders/number/{number}": {
      "get": {"summary": "Show an order by its order number", "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}}
    },
    "/api/orders/{id}/tickets": {
      "get": {"summary": "List the tickets of an order", "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}}
    },
    "/api/user/orders": {
      "get": {"summary": "List the caller's own orders, newest first", "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}}
    },
    "/api/download-tickets/{orderNumber}": {
      "get": {"summary": "Download the tickets of an order as a PDF", "security": [], "responses": {"200": {"description": "PDF stream"}, "404": {"description": "Not found"}}}
    }
  }
}`
