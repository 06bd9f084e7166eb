// Package util holds identifier casing shared by the language backends.
package util

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/iancoleman/strcase"
)

// goInitialisms are words Go spells in all caps inside identifiers
var goInitialisms = map[string]bool{
	"ACL": true, "API": true, "ASCII": true, "CPU": true, "CSS": true, "DNS": true,
	"EOF": true, "GUID": true, "HTML": true, "HTTP": true, "HTTPS": true, "ID": true,
	"IP": true, "JSON": true, "LHS": true, "QPS": true, "RAM": true, "RHS": true,
	"RPC": true, "SLA": true, "SMTP": true, "SQL": true, "SSH": true, "TCP": true,
	"TLS": true, "TTL": true, "UDP": true, "UI": true, "UID": true, "UUID": true,
	"URI": true, "URL": true, "UTF8": true, "VM": true, "XML": true, "XMPP": true,
	"XSRF": true, "XSS": true, "SMS": true, "MD5": true, "SHA256": true,
}

// UpperFirst capitalizes the first letter and keeps the rest as-is:
// "messageText" -> "MessageText"
func UpperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// LowerFirst lowercases the first letter and keeps the rest as-is
func LowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}

// GoFieldName converts a snake_case schema parameter to an exported Go name,
// spelling initialisms in caps: "chat_id" -> "ChatID", "web_page_url" -> "WebPageURL"
func GoFieldName(s string) string {
	words := strings.FieldsFunc(s, func(r rune) bool { return r == '_' || r == '-' })
	var sb strings.Builder
	for _, w := range words {
		if up := strings.ToUpper(w); goInitialisms[up] {
			sb.WriteString(up)
			continue
		}
		sb.WriteString(UpperFirst(w))
	}
	if sb.Len() == 0 {
		return "X"
	}
	return sb.String()
}

// ToPascalCase converts snake_case, kebab-case or camelCase to PascalCase
func ToPascalCase(s string) string {
	return strcase.ToCamel(s)
}

// ToSnakeCase converts PascalCase or camelCase to snake_case.
// Handles acronyms properly (e.g., "HTTPSConnection" -> "https_connection")
func ToSnakeCase(s string) string {
	return strcase.ToSnake(s)
}

// JoinPascal prefixes ident with the PascalCase namespace path:
// (["auth"], "SentCode") -> "AuthSentCode"
func JoinPascal(namespace []string, ident string) string {
	var sb strings.Builder
	for _, ns := range namespace {
		sb.WriteString(ToPascalCase(ns))
	}
	sb.WriteString(ident)
	return sb.String()
}

// JoinSnake prefixes ident with the snake_case namespace path:
// (["auth"], "code") -> "auth_code"
func JoinSnake(namespace []string, ident string) string {
	parts := make([]string, 0, len(namespace)+1)
	for _, ns := range namespace {
		parts = append(parts, ToSnakeCase(ns))
	}
	parts = append(parts, ident)
	return strings.Join(parts, "_")
}
