// Package authforms serves the sign-in and sign-up pages. A POST validates
// every field, re-renders the card with inline errors and the submitted
// values (passwords excluded) or navigates on success. A JSON endpoint
// exposes the form reducer for scripted clients.
package authforms
