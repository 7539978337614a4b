// Package web embebe las plantillas HTML y los recursos estáticos del front end.
package web

import "embed"

// Templates plantillas HTML de las vistas.
//
//go:embed templates/*.html
var Templates embed.FS

// Static recursos estáticos (hojas de estilo).
//
//go:embed static/*
var Static embed.FS
