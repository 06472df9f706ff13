// Package i18n holds the UI and report translations.
package i18n

import (
	"context"
	"fmt"
	"strings"
)

// DefaultLang is used when no supported language is requested.
const DefaultLang = "en"

var catalog = map[string]map[string]string{
	"en": {
		"report.doc_title":       "Maintenance Report",
		"report.global_title":    "Global Asset Report",
		"report.global_subtitle": "General Listing",
		"report.client_title":    "Client: %s",
		"report.site":            "Site: %s",
		"report.site_default":    "Main",
		"report.continuation":    "Continuation: %s",
		"report.category_serial": "Category: %s | Serial: %s",
		"report.location":        "Location: %s",
		"report.notes":           "Notes: %s",
		"sheet.name":             "Assets",
		"col.id":                 "ID",
		"col.name":               "Name",
		"col.category":           "Category",
		"col.serial":             "Serial",
		"col.location":           "Location",
		"col.status":             "Status",
		"col.notes":              "Notes",
		"col.client":             "Client",
		"no_client":              "No Client",
		"all_clients":            "All clients",
		"dashboard.title":        "Maintenance Dashboard",
		"dashboard.export_pdf":   "Export PDF",
		"dashboard.export_xlsx":  "Export Excel",
		"dashboard.empty":        "No equipment registered.",
		"dashboard.filter":       "Filter",
		"required":               "Required",
		"too_long":               "Too long",
		"invalid":                "Invalid",
	},
	"es": {
		"report.doc_title":       "Reporte de Mantenimiento",
		"report.global_title":    "Reporte Global de Activos",
		"report.global_subtitle": "Listado General",
		"report.client_title":    "Cliente: %s",
		"report.site":            "Sede: %s",
		"report.site_default":    "Principal",
		"report.continuation":    "Continuación: %s",
		"report.category_serial": "Tipo: %s | Serial: %s",
		"report.location":        "Ubicación: %s",
		"report.notes":           "Obs: %s",
		"sheet.name":             "Equipos",
		"col.id":                 "ID",
		"col.name":               "Nombre",
		"col.category":           "Tipo",
		"col.serial":             "Serial",
		"col.location":           "Ubicación",
		"col.status":             "Estado",
		"col.notes":              "Observaciones",
		"col.client":             "Cliente",
		"no_client":              "Sin Cliente",
		"all_clients":            "Todos los clientes",
		"dashboard.title":        "Panel de Mantenimiento",
		"dashboard.export_pdf":   "Exportar PDF",
		"dashboard.export_xlsx":  "Exportar Excel",
		"dashboard.empty":        "No hay equipos registrados.",
		"dashboard.filter":       "Filtrar",
		"required":               "Requerido",
		"too_long":               "Demasiado largo",
		"invalid":                "Inválido",
	},
}

// Supported reports whether lang has a catalog.
func Supported(lang string) bool {
	_, ok := catalog[lang]
	return ok
}

// T returns the translation of code in lang. Unknown languages fall back to
// DefaultLang; unknown codes are returned unchanged.
func T(lang, code string) string {
	if m, ok := catalog[lang]; ok {
		if s, ok := m[code]; ok {
			return s
		}
	}
	if s, ok := catalog[DefaultLang][code]; ok {
		return s
	}
	return code
}

// Tf formats the translation of code with args.
func Tf(lang, code string, args ...any) string {
	return fmt.Sprintf(T(lang, code), args...)
}

// DetectLanguage picks the first supported language of an Accept-Language header.
func DetectLanguage(header string) string {
	for _, part := range strings.Split(header, ",") {
		tag := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		if tag == "" {
			continue
		}
		base := strings.ToLower(strings.SplitN(tag, "-", 2)[0])
		if Supported(base) {
			return base
		}
	}
	return DefaultLang
}

type langKey struct{}

// WithLang stores the language in ctx.
func WithLang(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, langKey{}, lang)
}

// LangFromContext returns the language stored by WithLang, or DefaultLang.
func LangFromContext(ctx context.Context) string {
	if l, ok := ctx.Value(langKey{}).(string); ok && l != "" {
		return l
	}
	return DefaultLang
}
