// Package docs registers the OpenAPI description of the cafe API with swag so
// that echo-swagger can serve it under /swagger/*.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "paths": {
        "/api/auth/register": {"post": {"tags": ["auth"], "summary": "Register a new user", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}}},
        "/api/auth/login": {"post": {"tags": ["auth"], "summary": "Login", "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}},
        "/api/menu": {
            "get": {"tags": ["menu"], "summary": "List menu items", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["menu"], "summary": "Add a menu item", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "403": {"description": "Forbidden"}}}
        },
        "/api/menu/{id}": {
            "put": {"tags": ["menu"], "summary": "Update a menu item", "security": [{"BearerAuth": []}], "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "delete": {"tags": ["menu"], "summary": "Delete a menu item", "security": [{"BearerAuth": []}], "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/api/orders": {
            "get": {"tags": ["orders"], "summary": "List all orders", "security": [{"BearerAuth": []}], "parameters": [{"type": "string", "name": "status", "in": "query"}], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["orders"], "summary": "Place an order", "security": [{"BearerAuth": []}], "parameters": [{"type": "string", "name": "Idempotency-Key", "in": "header"}], "responses": {"201": {"description": "Created"}, "200": {"description": "Replayed request"}, "400": {"description": "Bad Request"}}}
        },
        "/api/my-orders": {"get": {"tags": ["orders"], "summary": "List the caller's orders", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/api/orders/{id}": {"delete": {"tags": ["orders"], "summary": "Delete an order", "security": [{"BearerAuth": []}], "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}},
        "/api/orders/{id}/status": {"put": {"tags": ["workflow"], "summary": "Update the status of an order", "security": [{"BearerAuth": []}], "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "403": {"description": "Forbidden"}, "404": {"description": "Not Found"}}}},
        "/api/bookings": {
            "get": {"tags": ["bookings"], "summary": "List all bookings", "security": [{"BearerAuth": []}], "parameters": [{"type": "string", "name": "status", "in": "query"}], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["bookings"], "summary": "Book a table", "security": [{"BearerAuth": []}], "parameters": [{"type": "string", "name": "Idempotency-Key", "in": "header"}], "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}}
        },
        "/api/my-bookings": {"get": {"tags": ["bookings"], "summary": "List the caller's bookings", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/api/bookings/{id}": {"delete": {"tags": ["bookings"], "summary": "Delete a booking", "security": [{"BearerAuth": []}], "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}},
        "/api/bookings/{id}/status": {"put": {"tags": ["workflow"], "summary": "Update the status of a booking", "security": [{"BearerAuth": []}], "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "403": {"description": "Forbidden"}, "404": {"description": "Not Found"}}}},
        "/api/messages": {
            "get": {"tags": ["messages"], "summary": "List contact messages", "security": [{"BearerAuth": []}], "parameters": [{"type": "string", "name": "status", "in": "query"}], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["messages"], "summary": "Send a contact message", "parameters": [{"type": "string", "name": "Idempotency-Key", "in": "header"}], "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}}
        },
        "/api/messages/{id}": {"delete": {"tags": ["messages"], "summary": "Delete a contact message", "security": [{"BearerAuth": []}], "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}},
        "/api/messages/{id}/status": {"put": {"tags": ["workflow"], "summary": "Update the status of a contact message", "security": [{"BearerAuth": []}], "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "403": {"description": "Forbidden"}, "404": {"description": "Not Found"}}}},
        "/api/admin/stats": {"get": {"tags": ["admin"], "summary": "Dashboard statistics", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Millets Cafe API",
	Description:      "Menu, orders, table bookings and contact messages for the cafe.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
