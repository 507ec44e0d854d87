// Package script provides a Lua host for toolkit client scripts.
// Scripts drive the widget families through a global toolkit table and
// run with CPU and memory limits.
package script

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"sync"

	"github.com/arnodel/golua/lib"
	rt "github.com/arnodel/golua/runtime"
)

// RuntimeConfig contains configuration options for the Lua host.
type RuntimeConfig struct {
	// CPULimit is the CPU instruction limit for one script execution.
	// 0 means unlimited.
	CPULimit uint64
	// MemoryLimit is the maximum memory in bytes a script can allocate.
	// 0 means unlimited.
	MemoryLimit uint64
	// Stdout is the writer for Lua print output.
	// If nil, os.Stdout is used.
	Stdout io.Writer
}

// DefaultConfig returns a RuntimeConfig with sensible default values.
// CPU limit: 10,000,000 instructions
// Memory limit: 50 MB
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		CPULimit:    10_000_000,
		MemoryLimit: 50 * 1024 * 1024,
		Stdout:      os.Stdout,
	}
}

// Host wraps a Golua runtime with the toolkit API installed.
// It serializes all script execution.
type Host struct {
	config  RuntimeConfig
	runtime *rt.Runtime
	cleanup func()
	api     *toolkitAPI
	mu      sync.Mutex
}

// New creates a Host with the Lua standard libraries and the toolkit
// global registered.
func New(config RuntimeConfig) (*Host, error) {
	stdout := config.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}

	runtime := rt.New(stdout)
	cleanup := lib.LoadAll(runtime)

	h := &Host{
		config:  config,
		runtime: runtime,
		cleanup: cleanup,
	}
	h.api = newToolkitAPI()
	h.api.register(runtime.GlobalEnv())

	return h, nil
}

// ExecuteString compiles and runs a Lua chunk.
func (h *Host) ExecuteString(name, code string) error {
	return h.execute(name, []byte(code))
}

// ExecuteFile reads and runs a Lua file.
func (h *Host) ExecuteFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read Lua file %s: %w", path, err)
	}
	return h.execute(path, content)
}

func (h *Host) execute(name string, code []byte) (err error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.runtime == nil {
		return fmt.Errorf("script host is closed")
	}

	closure, err := h.runtime.CompileAndLoadLuaChunk(
		name,
		code,
		rt.TableValue(h.runtime.GlobalEnv()),
	)
	if err != nil {
		return fmt.Errorf("failed to load Lua code %s: %w", name, err)
	}

	ctx := rt.RuntimeContextDef{
		HardLimits: rt.RuntimeResources{
			Cpu:    h.config.CPULimit,
			Memory: h.config.MemoryLimit,
		},
	}
	h.runtime.PushContext(ctx)
	defer h.runtime.PopContext()

	// golua panics when a hard limit is exceeded. Any other panic is a bug
	// and keeps unwinding.
	defer func() {
		if r := recover(); r != nil {
			if !isLimitPanic(r) {
				panic(r)
			}
			err = fmt.Errorf("%w: %s: %v", ErrResourceLimit, name, r)
		}
	}()

	h.api.fault = nil
	thread := h.runtime.MainThread()
	if _, callErr := rt.Call1(thread, rt.FunctionValue(closure)); callErr != nil {
		if fault := h.api.faultFor(callErr); fault != nil {
			return fmt.Errorf("Lua execution error: %w (%v)", fault, callErr)
		}
		return fmt.Errorf("Lua execution error: %w", callErr)
	}

	return nil
}

// limitPanicPattern matches golua's quota messages, e.g.
// "CPU limit of 10000 exceeded" or "memory limit of 1048576 exceeded".
var limitPanicPattern = regexp.MustCompile(`(?i)\blimit\b.*\bexceeded\b`)

// isLimitPanic reports whether a recovered value came from a golua hard limit.
func isLimitPanic(r any) bool {
	var msg string
	switch v := r.(type) {
	case error:
		msg = v.Error()
	case string:
		msg = v
	default:
		return false
	}
	return limitPanicPattern.MatchString(msg)
}

// Close releases resources associated with the host.
// The host should not be used after calling Close.
func (h *Host) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.cleanup != nil {
		h.cleanup()
		h.cleanup = nil
	}
	h.runtime = nil

	return nil
}
