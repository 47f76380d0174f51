// Package web carries the embedded browser front-end.
package web

import _ "embed"

//go:embed index.html
var Index []byte
