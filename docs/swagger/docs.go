// Package swagger registers the OpenAPI document served under /swagger/*.
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
        "/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["meta"],
                "summary": "Service metadata",
                "description": "Return the service banner, version and endpoint catalog.",
                "responses": {
                    "200": {
                        "description": "Metadata",
                        "schema": {"type": "object", "additionalProperties": true}
                    }
                }
            }
        },
        "/countries": {
            "get": {
                "produces": ["application/json"],
                "tags": ["countries"],
                "summary": "List countries",
                "description": "List stored countries with optional region/currency filters and sorting.",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Filter by region (case-insensitive)",
                        "name": "region",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Filter by currency code (case-insensitive)",
                        "name": "currency",
                        "in": "query"
                    },
                    {
                        "enum": ["name_asc", "name_desc", "gdp_asc", "gdp_desc", "population_asc", "population_desc"],
                        "type": "string",
                        "description": "Sort key",
                        "name": "sort",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Countries",
                        "schema": {
                            "type": "array",
                            "items": {"$ref": "#/definitions/models.Country"}
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {"type": "object", "additionalProperties": {"type": "string"}}
                    }
                }
            }
        },
        "/countries/refresh": {
            "post": {
                "produces": ["application/json"],
                "tags": ["countries"],
                "summary": "Refresh country data",
                "description": "Fetch countries and exchange rates from the external sources, merge them and upsert every record.",
                "responses": {
                    "200": {
                        "description": "Refresh result",
                        "schema": {"type": "object", "additionalProperties": true}
                    },
                    "503": {
                        "description": "External data source unavailable",
                        "schema": {"type": "object", "additionalProperties": {"type": "string"}}
                    }
                }
            }
        },
        "/countries/image": {
            "get": {
                "produces": ["image/png"],
                "tags": ["countries"],
                "summary": "Get summary image",
                "description": "Return the PNG summary generated by the last refresh.",
                "responses": {
                    "200": {
                        "description": "Summary image",
                        "schema": {"type": "file"}
                    },
                    "404": {
                        "description": "Summary image not found",
                        "schema": {"type": "object", "additionalProperties": {"type": "string"}}
                    }
                }
            }
        },
        "/countries/{name}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["countries"],
                "summary": "Get country",
                "description": "Look up one country by case-insensitive name.",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Country name",
                        "name": "name",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Country",
                        "schema": {"$ref": "#/definitions/models.Country"}
                    },
                    "404": {
                        "description": "Country not found",
                        "schema": {"type": "object", "additionalProperties": {"type": "string"}}
                    }
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["countries"],
                "summary": "Delete country",
                "description": "Delete one country by case-insensitive name.",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Country name",
                        "name": "name",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Deleted",
                        "schema": {"type": "object", "additionalProperties": {"type": "string"}}
                    },
                    "404": {
                        "description": "Country not found",
                        "schema": {"type": "object", "additionalProperties": {"type": "string"}}
                    }
                }
            }
        },
        "/status": {
            "get": {
                "produces": ["application/json"],
                "tags": ["status"],
                "summary": "Get status",
                "description": "Return the total record count and last refresh timestamp.",
                "responses": {
                    "200": {
                        "description": "Status",
                        "schema": {"$ref": "#/definitions/models.Status"}
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {"type": "object", "additionalProperties": {"type": "string"}}
                    }
                }
            }
        }
    },
    "definitions": {
        "models.Country": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "capital": {"type": "string"},
                "region": {"type": "string"},
                "population": {"type": "integer"},
                "currency_code": {"type": "string"},
                "exchange_rate": {"type": "number"},
                "estimated_gdp": {"type": "number"},
                "flag_url": {"type": "string"},
                "last_refreshed_at": {"type": "string", "format": "date-time"}
            }
        },
        "models.Status": {
            "type": "object",
            "properties": {
                "total_countries": {"type": "integer"},
                "last_refreshed_at": {"type": "string", "format": "date-time"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:3000",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Country Currency API",
	Description:      "API for country metadata, exchange rates and estimated GDP.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
