// Package docs registers the OpenAPI document served under /swagger.
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
    "paths": {
        "/ping": {
            "get": {
                "tags": ["health"],
                "summary": "Liveness probe",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/shipping/quote": {
            "post": {
                "tags": ["shipping"],
                "summary": "Quote delivery for a location",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/request.ShippingQuoteRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.ShippingQuoteResponse"}}}
            }
        },
        "/shipping/branches": {
            "get": {
                "tags": ["shipping"],
                "summary": "List branches",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/shipping/rules": {
            "get": {
                "tags": ["shipping"],
                "summary": "Current shipping rules",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/orders": {
            "get": {
                "security": [{"Bearer": []}],
                "tags": ["orders"],
                "summary": "List the caller's orders",
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}
            },
            "post": {
                "security": [{"Bearer": []}],
                "tags": ["orders"],
                "summary": "Create an order",
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/pkg.HTTPError"}},
                    "401": {"description": "Unauthorized"},
                    "422": {"description": "Outside coverage or slot unavailable", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        },
        "/orders/{id}": {
            "get": {
                "security": [{"Bearer": []}],
                "tags": ["orders"],
                "summary": "Get an order",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}, "404": {"description": "Not Found"}}
            }
        },
        "/orders/{id}/stream": {
            "get": {
                "security": [{"Bearer": []}],
                "tags": ["orders"],
                "summary": "Live order status (server-sent events)",
                "produces": ["text/event-stream"],
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "Event stream"}}
            }
        },
        "/checkout/preference": {
            "post": {
                "tags": ["checkout"],
                "summary": "Create a hosted checkout session",
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "missing_orderId | empty_items | invalid_body"},
                    "500": {"description": "mp_failed"}
                }
            }
        },
        "/webhooks/mercadopago": {
            "post": {
                "tags": ["webhooks"],
                "summary": "Mercado Pago notification",
                "responses": {"200": {"description": "Always acknowledged"}}
            }
        },
        "/admin/shipping/rules": {
            "put": {
                "security": [{"Bearer": []}],
                "tags": ["admin"],
                "summary": "Replace shipping rules",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/admin/branches/{id}": {
            "put": {
                "security": [{"Bearer": []}],
                "tags": ["admin"],
                "summary": "Create or replace a branch",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/admin/orders": {
            "get": {
                "security": [{"Bearer": []}],
                "tags": ["admin"],
                "summary": "List orders by status",
                "parameters": [{"type": "string", "name": "status", "in": "query", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/admin/orders/{id}/status": {
            "patch": {
                "security": [{"Bearer": []}],
                "tags": ["admin"],
                "summary": "Override order status",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        }
    },
    "definitions": {
        "pkg.HTTPError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "details": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "request.ShippingQuoteRequest": {
            "type": "object",
            "properties": {
                "location": {"type": "object", "properties": {"lat": {"type": "number"}, "lng": {"type": "number"}}},
                "municipality": {"type": "string"}
            }
        },
        "response.ShippingQuoteResponse": {
            "type": "object",
            "properties": {
                "branchId": {"type": "string"},
                "branchName": {"type": "string"},
                "distanceKm": {"type": "number"},
                "amount": {"type": "integer"},
                "earlyOnly": {"type": "boolean"},
                "outOfCoverage": {"type": "boolean"},
                "notes": {"type": "array", "items": {"type": "string"}},
                "expressFee": {"type": "integer"}
            }
        }
    },
    "securityDefinitions": {
        "Bearer": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/v1",
	Schemes:          []string{},
	Title:            "Panadería API",
	Description:      "Storefront backend: shipping quotes, orders, Mercado Pago checkout and webhook reconciliation.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
