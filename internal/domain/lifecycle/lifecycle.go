// Package lifecycle holds timing shared by components started and stopped by fx.
package lifecycle

import "time"

// DefaultTimeout bounds graceful start and stop of every component.
const DefaultTimeout = 10 * time.Second
