package uncertainty

import (
	"context"
	"fmt"

	"github.com/GriffinCanCode/uncertain/internal/shared/types"
	"github.com/GriffinCanCode/uncertain/internal/uncertain"
)

// Provider exposes correlation-aware uncertainty arithmetic as service tools.
// Values live in a handle store between calls; every tool that produces a
// value returns a fresh handle plus the nominal/stddev pair.
type Provider struct {
	store *Store
	reg   *uncertain.VarRegistry
}

// NewProvider creates an uncertainty provider backed by the process-wide
// variable registry. storeCapacity bounds the number of live handles
// (0 means unbounded).
func NewProvider(storeCapacity int) *Provider {
	return &Provider{
		store: NewStore(storeCapacity),
		reg:   uncertain.Default(),
	}
}

// NewProviderWith creates a provider against an isolated variable registry,
// for tests that must not share global state.
func NewProviderWith(reg *uncertain.VarRegistry, storeCapacity int) *Provider {
	return &Provider{
		store: NewStore(storeCapacity),
		reg:   reg,
	}
}

// Registry returns the variable registry backing this provider.
func (p *Provider) Registry() *uncertain.VarRegistry {
	return p.reg
}

// StoredValues reports the number of live handles.
func (p *Provider) StoredValues() int {
	return p.store.Len()
}

// Definition returns service metadata with all tools
func (p *Provider) Definition() types.Service {
	tools := []types.Tool{}
	tools = append(tools, p.constructTools()...)
	tools = append(tools, p.arithTools()...)
	tools = append(tools, p.funcTools()...)

	return types.Service{
		ID:          "uncertainty",
		Name:        "Uncertainty Service",
		Description: "Correlation-aware propagation of measurement uncertainty (arithmetic, elementary functions, formatting)",
		Category:    types.CategoryUncertainty,
		Capabilities: []string{
			"construction",
			"arithmetic",
			"elementary_functions",
			"correlation_tracking",
			"formatting",
		},
		Tools: tools,
	}
}

// Execute routes to the matching tool handler
func (p *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	switch toolID {
	// Construction and lifecycle
	case "uncertainty.create":
		return p.create(ctx, params, appCtx)
	case "uncertainty.constant":
		return p.constant(ctx, params, appCtx)
	case "uncertainty.get":
		return p.get(ctx, params, appCtx)
	case "uncertainty.independent":
		return p.independent(ctx, params, appCtx)
	case "uncertainty.format":
		return p.format(ctx, params, appCtx)
	case "uncertainty.release":
		return p.release(ctx, params, appCtx)
	case "uncertainty.reset":
		return p.reset(ctx, params, appCtx)
	case "uncertainty.stats":
		return p.stats(ctx, params, appCtx)

	// Arithmetic
	case "uncertainty.add":
		return p.add(ctx, params, appCtx)
	case "uncertainty.subtract":
		return p.subtract(ctx, params, appCtx)
	case "uncertainty.multiply":
		return p.multiply(ctx, params, appCtx)
	case "uncertainty.divide":
		return p.divide(ctx, params, appCtx)
	case "uncertainty.pow":
		return p.pow(ctx, params, appCtx)
	case "uncertainty.scale":
		return p.scale(ctx, params, appCtx)
	case "uncertainty.neg":
		return p.neg(ctx, params, appCtx)

	// Elementary functions
	case "uncertainty.sin", "uncertainty.cos", "uncertainty.tan",
		"uncertainty.asin", "uncertainty.acos", "uncertainty.atan",
		"uncertainty.sinh", "uncertainty.cosh", "uncertainty.tanh",
		"uncertainty.asinh", "uncertainty.acosh", "uncertainty.atanh",
		"uncertainty.exp", "uncertainty.log", "uncertainty.log10",
		"uncertainty.sqrt", "uncertainty.abs":
		return p.applyUnary(ctx, toolID, params, appCtx)
	case "uncertainty.atan2":
		return p.atan2(ctx, params, appCtx)
	case "uncertainty.hypot":
		return p.hypot(ctx, params, appCtx)

	default:
		return Failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}

// operand resolves a handle parameter to its stored value.
func (p *Provider) operand(params map[string]interface{}, key string) (uncertain.Value, bool) {
	id, ok := GetString(params, key)
	if !ok {
		return uncertain.Value{}, false
	}
	return p.store.Get(id)
}

// emit stores a computed value and reports it.
func (p *Provider) emit(v uncertain.Value) (*types.Result, error) {
	id, err := p.store.Put(v)
	if err != nil {
		return Failure(err.Error())
	}
	return Success(describe(id, v))
}
