// Package store defines the persistence abstractions for the application:
// the FoodStore and RequestStore interfaces over the two document
// collections, the query model for listing lookups, and the shared error
// taxonomy implementations map driver errors onto.
package store
