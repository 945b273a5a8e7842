// Package branding holds the user-visible product name.
package branding

// AppName is the product name shown in server implementations and catalogs.
const AppName = "Persona Icons"
