// Package web embute o template da página do painel e os arquivos estáticos
package web

import "embed"

//go:embed templates/*.html static/*
var FS embed.FS
