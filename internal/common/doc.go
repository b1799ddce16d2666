// Package common holds small generic helpers shared by the index builders.
package common
