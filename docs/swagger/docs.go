// Package swagger holds the OpenAPI document served at /swagger.
// Regenerate with: swag init -g cmd/server/server.go -o docs/swagger
package swagger

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
        "/WellBore": {
            "get": {
                "produces": ["application/json"],
                "tags": ["WellBore"],
                "summary": "List wellbore ids",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"type": "string"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/responses.ErrorResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "tags": ["WellBore"],
                "summary": "Create a wellbore",
                "parameters": [
                    {"description": "WellBore to create", "name": "wellBore", "in": "body", "required": true, "schema": {"$ref": "#/definitions/wellbore.WellBore"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/responses.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/responses.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/responses.ErrorResponse"}}
                }
            }
        },
        "/WellBore/HeavyData": {
            "get": {
                "produces": ["application/json"],
                "tags": ["WellBore"],
                "summary": "List every wellbore with all its data",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/wellbore.WellBore"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/responses.ErrorResponse"}}
                }
            }
        },
        "/WellBore/MetaInfo": {
            "get": {
                "produces": ["application/json"],
                "tags": ["WellBore"],
                "summary": "List the MetaInfo of every wellbore",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/wellbore.MetaInfo"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/responses.ErrorResponse"}}
                }
            }
        },
        "/WellBore/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["WellBore"],
                "summary": "Get a wellbore",
                "parameters": [{"type": "string", "description": "WellBore ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/wellbore.WellBore"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/responses.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/responses.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/responses.ErrorResponse"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "tags": ["WellBore"],
                "summary": "Replace a wellbore",
                "parameters": [
                    {"type": "string", "description": "WellBore ID", "name": "id", "in": "path", "required": true},
                    {"description": "WellBore replacing the stored one", "name": "wellBore", "in": "body", "required": true, "schema": {"$ref": "#/definitions/wellbore.WellBore"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/responses.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/responses.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/responses.ErrorResponse"}}
                }
            },
            "delete": {
                "tags": ["WellBore"],
                "summary": "Delete a wellbore",
                "parameters": [{"type": "string", "description": "WellBore ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/responses.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/responses.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/responses.ErrorResponse"}}
                }
            }
        },
        "/WellBoreUsageStatistics": {
            "get": {
                "description": "Daily call counts of every WellBore operation, in the persisted snapshot layout.",
                "produces": ["application/json"],
                "tags": ["WellBoreUsageStatistics"],
                "summary": "Usage statistics",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/responses.UsageStatisticsDoc"}}
                }
            }
        }
    },
    "definitions": {
        "platformerrors.HTTPErrorDetail": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "request_id": {"type": "string"},
                "type": {"type": "string"}
            }
        },
        "responses.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"$ref": "#/definitions/platformerrors.HTTPErrorDetail"}
            }
        },
        "responses.DayCount": {
            "type": "object",
            "properties": {
                "count": {"type": "integer", "example": 12},
                "date": {"type": "string", "example": "2026-10-17"}
            }
        },
        "responses.HistoryDoc": {
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {"$ref": "#/definitions/responses.DayCount"}}
            }
        },
        "responses.UsageStatisticsDoc": {
            "type": "object",
            "properties": {
                "backupInterval": {"type": "string", "example": "5m0s"},
                "lastSavedAt": {"type": "string", "example": "2026-10-17T08:12:44Z"},
                "getAllWellBoreIdPerDay": {"$ref": "#/definitions/responses.HistoryDoc"},
                "getAllWellBoreMetaInfoPerDay": {"$ref": "#/definitions/responses.HistoryDoc"},
                "getWellBoreByIdPerDay": {"$ref": "#/definitions/responses.HistoryDoc"},
                "getAllWellBorePerDay": {"$ref": "#/definitions/responses.HistoryDoc"},
                "postWellBorePerDay": {"$ref": "#/definitions/responses.HistoryDoc"},
                "putWellBoreByIdPerDay": {"$ref": "#/definitions/responses.HistoryDoc"},
                "deleteWellBoreByIdPerDay": {"$ref": "#/definitions/responses.HistoryDoc"}
            }
        },
        "wellbore.GaussianProperty": {
            "type": "object",
            "properties": {
                "mean": {"type": "number"},
                "standardDeviation": {"type": "number"}
            }
        },
        "wellbore.MetaInfo": {
            "type": "object",
            "required": ["id"],
            "properties": {
                "httpEndPoint": {"type": "string"},
                "httpHostBasePath": {"type": "string"},
                "httpHostName": {"type": "string"},
                "id": {"type": "string"}
            }
        },
        "wellbore.WellBore": {
            "type": "object",
            "required": ["metaInfo"],
            "properties": {
                "creationDate": {"type": "string"},
                "description": {"type": "string"},
                "isSidetrack": {"type": "boolean"},
                "lastModificationDate": {"type": "string"},
                "metaInfo": {"$ref": "#/definitions/wellbore.MetaInfo"},
                "name": {"type": "string"},
                "parentWellBoreId": {"type": "string"},
                "rigId": {"type": "string"},
                "sidetrackType": {"type": "string", "enum": ["Undefined", "Technical", "Production", "Appraisal", "Lateral"]},
                "tieInPointAlongHoleDepth": {"$ref": "#/definitions/wellbore.GaussianProperty"},
                "wellId": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/WellBore/api",
	Schemes:          []string{},
	Title:            "WellBore API",
	Description:      "CRUD service for wellbores with per-day usage statistics",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
