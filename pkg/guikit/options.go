package guikit

import (
	"io"
	"time"

	"github.com/opd-ai/guikit/internal/script"
)

// DefaultWatchDebounce is the default debounce interval for script watch events.
const DefaultWatchDebounce = 500 * time.Millisecond

// Options configures a Runner.
type Options struct {
	// Stdout receives demonstration and script output.
	// If nil, os.Stdout is used.
	Stdout io.Writer

	// Logger receives run and script-watch records. Records carry the
	// toolkit or script path as attributes. If nil, nothing is logged.
	Logger Logger

	// ScriptCPULimit overrides the Lua CPU instruction limit.
	// Zero means use the default (10 million instructions).
	ScriptCPULimit uint64

	// ScriptMemoryLimit overrides the Lua memory limit in bytes.
	// Zero means use the default (50 MB).
	ScriptMemoryLimit uint64

	// WatchDebounce sets the debounce interval for script change events.
	// Zero means use DefaultWatchDebounce.
	WatchDebounce time.Duration
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		ScriptCPULimit:    0, // Use default
		ScriptMemoryLimit: 0, // Use default
		WatchDebounce:     0, // Use DefaultWatchDebounce
	}
}

// scriptConfig builds the Lua host configuration for these options.
func (o Options) scriptConfig(stdout io.Writer) script.RuntimeConfig {
	config := script.DefaultConfig()
	config.Stdout = stdout
	if o.ScriptCPULimit > 0 {
		config.CPULimit = o.ScriptCPULimit
	}
	if o.ScriptMemoryLimit > 0 {
		config.MemoryLimit = o.ScriptMemoryLimit
	}
	return config
}
