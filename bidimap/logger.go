package bidimap

import (
	"github.com/hashicorp/go-hclog"
)

var logger hclog.Logger

func init() {
	logger = hclog.NewNullLogger()
}

// SetLogger replaces the logger used by all maps of this package.
// Writes are logged on trace level; invariant violations on error level right before the panic.
// Passing nil silences the package again.
func SetLogger(l hclog.Logger) {
	if l == nil {
		l = hclog.NewNullLogger()
	}

	logger = l.Named("bidimap")
}
