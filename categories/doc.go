// Package categories provides the categories REST service and list.
package categories
