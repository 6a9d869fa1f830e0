package app

import (
	"github.com/pinax-network/pacprune/internal/appcontext"
)

// Interface aliases the shared application context interface that
// commands consume.
type Interface = appcontext.Interface

// Ensure App implements the shared interface at compile time.
var _ appcontext.Interface = (*App)(nil)
