package alias

// SetAliasInput contains parameters for storing a realm alias
type SetAliasInput struct {
	// Alias is the shorthand name
	Alias string

	// RealmName is the canonical realm the alias points to
	RealmName string

	// Overwrite allows replacing an existing alias
	Overwrite bool
}

// GetAliasInput contains parameters for resolving an alias
type GetAliasInput struct {
	// Alias is the shorthand name to resolve
	Alias string
}

// GetAliasOutput contains the resolved realm name
type GetAliasOutput struct {
	// RealmName is the canonical realm the alias points to
	RealmName string
}

// ListAliasesInput contains parameters for listing aliases
type ListAliasesInput struct{}

// ListAliasesOutput contains every stored alias
type ListAliasesOutput struct {
	// Aliases maps alias -> realm name
	Aliases map[string]string
}
