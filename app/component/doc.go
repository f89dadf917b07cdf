// Package component holds the HTML building blocks shared by every page.
package component
