// Package lifecycle holds shared process lifecycle settings.
package lifecycle

import "time"

// DefaultTimeout bounds start and stop hooks such as the database ping and HTTP shutdown.
const DefaultTimeout = 10 * time.Second
