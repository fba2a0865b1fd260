// Package products provides the products REST service and the product list,
// whose stock figures follow the currently selected store.
package products
