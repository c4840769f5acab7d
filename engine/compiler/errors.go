package compiler

import "errors"

var errNilSpec = errors.New("component spec is nil")
