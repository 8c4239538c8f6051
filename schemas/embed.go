// Package schemas embeds the JSON Schemas for documents the service ingests.
package schemas

import _ "embed"

// TemplateCatalogPath is the schema's file name in this directory. The embedded copy must match it.
const TemplateCatalogPath = "template_catalog.schema.json"

// TemplateCatalog is the JSON Schema for template catalog documents.
//
//go:embed template_catalog.schema.json
var TemplateCatalog []byte
