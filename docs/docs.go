// Package docs содержит описание API для swagger. Поддерживается вручную вместе с аннотациями хэндлеров.
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
        "/dashboard": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Dashboard"],
                "summary": "Dashboard overview",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/v1.DashboardResponse"}}
                }
            }
        },
        "/map/hazards": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Map"],
                "summary": "Hazard map markers",
                "parameters": [
                    {"enum": ["1h", "6h", "24h", "7d"], "type": "string", "default": "24h", "description": "Time range", "name": "range", "in": "query"},
                    {"type": "array", "items": {"type": "string"}, "collectionFormat": "multi", "description": "Hazard type filters", "name": "type", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/v1.MapHazardsResponse"}}
                }
            }
        },
        "/map/hazards.geojson": {
            "get": {
                "produces": ["application/geo+json"],
                "tags": ["Map"],
                "summary": "Hazard map as GeoJSON",
                "parameters": [
                    {"type": "array", "items": {"type": "string"}, "collectionFormat": "multi", "description": "Hazard type filters", "name": "type", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/social/feed": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Social"],
                "summary": "Social media feed",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/v1.SocialFeedResponse"}}
                }
            }
        },
        "/social/trends": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Social"],
                "summary": "Social media trends",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/v1.SocialTrendsResponse"}}
                }
            }
        },
        "/social/analytics": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Social"],
                "summary": "Social media analytics",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/v1.SocialAnalyticsResponse"}}
                }
            }
        },
        "/report/options": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Report"],
                "summary": "Report form options",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/v1.ReportOptionsResponse"}}
                }
            }
        },
        "/report/drafts": {
            "post": {
                "produces": ["application/json"],
                "tags": ["Report"],
                "summary": "Create a report draft",
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/v1.DraftResponse"}},
                    "429": {"description": "Too Many Requests", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/report/drafts/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Report"],
                "summary": "Get a report draft",
                "parameters": [{"type": "string", "description": "Draft ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/v1.DraftResponse"}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "delete": {
                "tags": ["Report"],
                "summary": "Discard a report draft",
                "parameters": [{"type": "string", "description": "Draft ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "No Content"}
                }
            },
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Report"],
                "summary": "Update one draft field",
                "parameters": [
                    {"type": "string", "description": "Draft ID", "name": "id", "in": "path", "required": true},
                    {"description": "Field change", "name": "change", "in": "body", "required": true, "schema": {"$ref": "#/definitions/v1.UpdateFieldRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/v1.DraftResponse"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/report/drafts/{id}/location": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Report"],
                "summary": "Apply a geolocation outcome",
                "parameters": [
                    {"type": "string", "description": "Draft ID", "name": "id", "in": "path", "required": true},
                    {"description": "Coordinates or error", "name": "outcome", "in": "body", "required": true, "schema": {"$ref": "#/definitions/v1.LocationOutcomeRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/v1.DraftResponse"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/report/drafts/{id}/photos": {
            "post": {
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["Report"],
                "summary": "Attach photos to a draft",
                "parameters": [
                    {"type": "string", "description": "Draft ID", "name": "id", "in": "path", "required": true},
                    {"type": "file", "description": "Photos", "name": "photos", "in": "formData", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/v1.DraftResponse"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/report/drafts/{id}/submit": {
            "post": {
                "produces": ["application/json"],
                "tags": ["Report"],
                "summary": "Submit a draft",
                "parameters": [{"type": "string", "description": "Draft ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/v1.SubmitResponse"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/reports": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["Reports"],
                "summary": "Get a list of submitted reports",
                "parameters": [
                    {"type": "integer", "default": 1, "description": "Page number", "name": "page", "in": "query"},
                    {"type": "integer", "default": 20, "description": "Number of items per page", "name": "pageSize", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/v1.ReportResponse"}}},
                    "401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/reports/stats": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["Reports"],
                "summary": "Get report statistics",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/v1.StatsResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/reports/{id}": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["Reports"],
                "summary": "Get report by ID",
                "parameters": [{"type": "string", "description": "Report ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/v1.ReportResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/system/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["System"],
                "summary": "Get application health status",
                "responses": {
                    "200": {"description": "Status OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        }
    },
    "definitions": {
        "v1.DashboardResponse": {"type": "object"},
        "v1.MapHazardsResponse": {"type": "object"},
        "v1.SocialFeedResponse": {"type": "object"},
        "v1.SocialTrendsResponse": {"type": "object"},
        "v1.SocialAnalyticsResponse": {"type": "object"},
        "v1.ReportOptionsResponse": {"type": "object"},
        "v1.DraftResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "form": {"type": "object"},
                "updated_at": {"type": "string"},
                "notification": {"type": "object"}
            }
        },
        "v1.UpdateFieldRequest": {
            "type": "object",
            "required": ["field"],
            "properties": {
                "field": {"type": "string", "enum": ["hazard_type", "severity", "description", "location", "latitude", "longitude"]},
                "value": {"type": "string"}
            }
        },
        "v1.LocationOutcomeRequest": {
            "type": "object",
            "properties": {
                "latitude": {"type": "number"},
                "longitude": {"type": "number"},
                "error": {"type": "string"}
            }
        },
        "v1.ReportResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "hazard_type": {"type": "string"},
                "hazard_type_label": {"type": "string"},
                "location": {"type": "string"},
                "severity": {"type": "string"},
                "severity_color": {"type": "string"},
                "description": {"type": "string"},
                "latitude": {"type": "number"},
                "longitude": {"type": "number"},
                "photos": {"type": "array", "items": {"type": "object"}},
                "status": {"type": "string"},
                "submitted_at": {"type": "string"}
            }
        },
        "v1.SubmitResponse": {
            "type": "object",
            "properties": {
                "report": {"$ref": "#/definitions/v1.ReportResponse"},
                "draft": {"$ref": "#/definitions/v1.DraftResponse"},
                "notification": {"type": "object"}
            }
        },
        "v1.StatsResponse": {
            "type": "object",
            "properties": {
                "window_minutes": {"type": "integer"},
                "total": {"type": "integer"},
                "by_severity": {"type": "object", "additionalProperties": {"type": "integer"}}
            }
        }
    },
    "securityDefinitions": {
        "ApiKeyAuth": {
            "type": "apiKey",
            "name": "X-API-Key",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Ocean Watch API",
	Description:      "Coastal hazard monitoring and community reporting API.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
