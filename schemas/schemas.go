package schemas

import "embed"

// SchemasFS содержит JSON Schema значений, которые сервис кладет в хранилище сессии.
//
//go:embed storage
var SchemasFS embed.FS
