package entity

// WorkspaceID identifies a workspace: the primary one or a floating one.
type WorkspaceID string
