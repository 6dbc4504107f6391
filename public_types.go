package client

import "github.com/kaenova/prompty/client/internal/types"

// Public type aliases so SDK consumers can import only the client package.
type (
	PromptDetails = types.PromptDetails
)

// Response field names, usable with PromptDetails.Has.
const (
	FieldAgentName  = types.FieldAgentName
	FieldPromptText = types.FieldPromptText
	FieldPromptID   = types.FieldPromptID
	FieldUpdatedAt  = types.FieldUpdatedAt
)
