package domain

import "time"

type BuildInfo struct {
	Version     string
	Commit      string
	Environment string
	Product     string
	StartedAt   time.Time
}

// Build describes the running binary. Version and commit are stamped
// by the linker, the rest is filled in at startup.
var Build = BuildInfo{
	Version:   "dev",
	Commit:    "dirty",
	StartedAt: time.Now(),
}

func (self BuildInfo) Uptime() time.Duration {
	return time.Since(self.StartedAt).Round(time.Second)
}
