// Package web contiene las plantillas HTML del back-office embebidas en el binario.
package web

import "embed"

// Templates árbol templates/ (layouts, páginas por directorio y errores).
//
//go:embed templates
var Templates embed.FS
