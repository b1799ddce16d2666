// Package testfixture writes a small but complete TM1 extract into a
// filesystem for tests of the stages that consume one.
package testfixture
