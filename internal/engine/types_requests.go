package engine

import (
	"fmt"

	"github.com/danieljhkim/hookbuild/internal/config"
)

// BuildRequest represents a request to build the hooks.
type BuildRequest struct {
	// Paths locates the hook sources and the dist directory
	Paths *config.Paths

	// Bundle is the ordered list of hooks to bundle
	Bundle []string

	// Copy is the ordered list of hooks to copy verbatim
	Copy []string

	// DryRun performs planning only without making changes
	DryRun bool
}

// validate checks the request before planning.
func (r *BuildRequest) validate() error {
	if r == nil || r.Paths == nil {
		return fmt.Errorf("%w: no paths configured", ErrValidation)
	}
	if r.Paths.Hooks == "" || r.Paths.Dist == "" {
		return fmt.Errorf("%w: hooks and dist directories are required", ErrValidation)
	}
	return nil
}
