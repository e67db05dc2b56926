package project

import (
	"github.com/ariel-frischer/chlog/internal/changelog"
)

// ConfigResolver resolves components from the declarations in the changelog
// configuration.
type ConfigResolver struct {
	components map[string]changelog.Component
}

// NewConfigResolver builds a resolver over the configured component map.
func NewConfigResolver(cfg *changelog.Config) *ConfigResolver {
	return &ConfigResolver{components: cfg.Components.All}
}

// Resolve returns the declared component, or nil when the ID is not declared.
func (r *ConfigResolver) Resolve(id string) (*changelog.Component, error) {
	c, ok := r.components[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

// ChainResolver tries each resolver in order and returns the first match.
type ChainResolver struct {
	resolvers []changelog.ComponentResolver
}

// NewChainResolver chains the given resolvers. A nil resolver is skipped.
func NewChainResolver(resolvers ...changelog.ComponentResolver) *ChainResolver {
	chain := &ChainResolver{}
	for _, r := range resolvers {
		if r != nil {
			chain.resolvers = append(chain.resolvers, r)
		}
	}
	return chain
}

func (r *ChainResolver) Resolve(id string) (*changelog.Component, error) {
	for _, resolver := range r.resolvers {
		c, err := resolver.Resolve(id)
		if err != nil {
			return nil, err
		}
		if c != nil {
			return c, nil
		}
	}
	return nil, nil
}
