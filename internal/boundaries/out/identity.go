package out

// IdentityProvider supplies an externally defined workspace identity, such as
// the name an orchestrator assigned to the workspace.
type IdentityProvider interface {
	// WorkspaceName returns the identity hint, or an empty string.
	WorkspaceName() string
}
