// Package model defines the storefront entities exchanged with the REST backend.
//
// JSON tags follow the backend's wire names, which mix snake_case entity
// fields with camelCase pagination counters.
package model
