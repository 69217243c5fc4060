// Package internal contains the SDL backend for optionrow: window and
// renderer setup, fonts, theming, input mapping and painting of laid-out
// view trees. Types and functions in this package are not part of the
// public API.
package internal
