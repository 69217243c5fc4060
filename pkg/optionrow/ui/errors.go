package ui

import "errors"

var errNotInitialized = errors.New("ui.Init has not been called")
