package modkit

import "complaints/internal/modkit/module"

// Module is the common surface for API modules that mount routes and expose ports
type Module = module.Module
