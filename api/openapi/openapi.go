// Package openapi embeds the API contract served at /api/openapi.yaml.
package openapi

import _ "embed"

// Spec is the OpenAPI 3 document for /api/v1.
//
//go:embed openapi.yaml
var Spec []byte
