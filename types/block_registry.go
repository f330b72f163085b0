package types

// BlockRegistry interface for centralized content-block type management.
// The set of block types the upstream model emits has drifted before, so the
// recognized set lives in one place instead of being probed ad hoc at every
// call site.
type BlockRegistry interface {
	// IsRecognized reports whether a block type is part of the canonical
	// contract
	IsRecognized(blockType string) bool

	// ListTypes returns all recognized block type names
	ListTypes() []string

	// RegisterType adds a block type to the recognized set
	RegisterType(blockType string)
}

// BlockTypeMarkdown is the canonical fallback type; any unrecognized block
// type is repaired to it rather than guessing a richer rendering contract.
const BlockTypeMarkdown = "markdown"

// BlockTypeList is an explicit list block emitted by newer upstream schemas.
const BlockTypeList = "list"

// StandardBlockRegistry is the default implementation of BlockRegistry
type StandardBlockRegistry struct {
	blockTypes map[string]bool
}

// NewStandardBlockRegistry creates a registry seeded with the block types
// observed in well-formed v2 payloads.
func NewStandardBlockRegistry() *StandardBlockRegistry {
	return &StandardBlockRegistry{
		blockTypes: map[string]bool{
			BlockTypeMarkdown: true,
			BlockTypeList:     true,
		},
	}
}

// IsRecognized reports whether a block type is part of the canonical contract
func (r *StandardBlockRegistry) IsRecognized(blockType string) bool {
	return r.blockTypes[blockType]
}

// ListTypes returns all recognized block type names
func (r *StandardBlockRegistry) ListTypes() []string {
	names := make([]string, 0, len(r.blockTypes))
	for name := range r.blockTypes {
		names = append(names, name)
	}
	return names
}

// RegisterType adds a block type to the recognized set
func (r *StandardBlockRegistry) RegisterType(blockType string) {
	if blockType == "" {
		return
	}
	r.blockTypes[blockType] = true
}
