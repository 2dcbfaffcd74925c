package planner

import (
	"fmt"

	"github.com/danieljhkim/hookbuild/internal/fsops"
)

// ConflictChecker checks hook names as they are added to a plan.
type ConflictChecker struct {
	fs fsops.FS

	// claimed maps a hook name to the list that first claimed it
	claimed map[string]string
}

// NewConflictChecker creates a new ConflictChecker.
func NewConflictChecker(fs fsops.FS) *ConflictChecker {
	return &ConflictChecker{
		fs:      fs,
		claimed: make(map[string]string),
	}
}

// CheckName checks a hook name about to be planned as opType.
// Returns a Conflict if one is detected, or nil if the name is safe to use.
func (c *ConflictChecker) CheckName(name, opType string) *Conflict {
	if err := c.fs.ValidateName(name); err != nil {
		return &Conflict{
			Name:   name,
			Reason: err.Error(),
		}
	}

	previous, exists := c.claimed[name]
	if !exists {
		c.claimed[name] = opType
		return nil
	}

	if previous == opType {
		return &Conflict{
			Name:   name,
			Reason: fmt.Sprintf("listed more than once in the %s list", opType),
		}
	}
	return &Conflict{
		Name:   name,
		Reason: fmt.Sprintf("listed in both the %s and %s lists; both would write the same artifact", previous, opType),
	}
}
