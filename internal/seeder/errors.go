package seeder

import "errors"

var (
	ErrDuplicateChunk     = errors.New("duplicate chunk")
	ErrUnknownDependency  = errors.New("unknown dependency")
	ErrCycle              = errors.New("circular dependency")
	ErrUnknownChunk       = errors.New("unknown chunk")
	ErrChunkTimeout       = errors.New("chunk timed out")
	ErrDependencyNotReady = errors.New("dependency did not succeed")
	ErrScopedCleanup      = errors.New("cleanup cannot be limited to a facility")
)
