// Package services holds the in-memory registries of users, items and
// categories, and the session layer that gates them by role.
//
// Registries keep their records in insertion order and persist the whole
// store after every successful mutation. A mutation whose save fails is
// undone in memory before the error is returned.
package services
