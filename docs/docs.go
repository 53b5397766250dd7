// Package docs is generated by swag from the handler annotations.
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
        "/geocode": {
            "get": {
                "produces": ["application/json"],
                "tags": ["geocode"],
                "summary": "Geocode an address",
                "parameters": [
                    {"type": "string", "description": "address text", "name": "q", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.GeocodeCandidate"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/search": {
            "get": {
                "produces": ["application/json"],
                "tags": ["search"],
                "summary": "Search nearby restaurants",
                "parameters": [
                    {"type": "string", "description": "manual or gps", "name": "mode", "in": "query"},
                    {"type": "string", "description": "address for manual mode", "name": "address", "in": "query"},
                    {"type": "number", "description": "device latitude for gps mode", "name": "lat", "in": "query"},
                    {"type": "number", "description": "device longitude for gps mode", "name": "lng", "in": "query"},
                    {"type": "integer", "description": "100, 500, 1000 or 5000", "name": "radius", "in": "query"},
                    {"type": "string", "description": "meal time label or name", "name": "meal_time", "in": "query"},
                    {"type": "string", "description": "100, 300, 500 or 1000", "name": "budget", "in": "query"},
                    {"type": "array", "items": {"type": "string"}, "collectionFormat": "multi", "description": "cuisine tags", "name": "cuisine", "in": "query"},
                    {"type": "number", "description": "minimum rating", "name": "min_rating", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.SearchResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handler.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "handler.SearchResponse": {
            "type": "object",
            "properties": {
                "count": {"type": "integer"},
                "keyword": {"type": "string"},
                "max_price": {"type": "integer"},
                "message": {"type": "string"},
                "origin": {"$ref": "#/definitions/models.Coordinates"},
                "places": {"type": "array", "items": {"$ref": "#/definitions/models.PlaceRecord"}}
            }
        },
        "models.Coordinates": {
            "type": "object",
            "properties": {"lat": {"type": "number"}, "lng": {"type": "number"}}
        },
        "models.GeocodeCandidate": {
            "type": "object",
            "properties": {
                "address": {"type": "string"},
                "location": {"$ref": "#/definitions/models.Coordinates"}
            }
        },
        "models.PlaceRecord": {
            "type": "object",
            "properties": {
                "address": {"type": "string"},
                "lat": {"type": "number"},
                "lng": {"type": "number"},
                "maps_url": {"type": "string"},
                "name": {"type": "string"},
                "place_id": {"type": "string"},
                "price_level": {"type": "integer"},
                "rating": {"type": "number"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Restaurant Finder API",
	Description:      "Nearby restaurant search backed by Google Places.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
