// Package api contains the HTTP handlers, request/response models, and
// error mapping for the food-donation REST surface.
package api
