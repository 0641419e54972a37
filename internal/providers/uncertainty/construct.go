package uncertainty

import (
	"context"

	"github.com/GriffinCanCode/uncertain/internal/shared/types"
	"github.com/GriffinCanCode/uncertain/internal/uncertain"
	"github.com/GriffinCanCode/uncertain/internal/uncertain/uformat"
)

func (p *Provider) constructTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "uncertainty.create",
			Name:        "Create Value",
			Description: "Create an uncertain value with a nominal and a standard deviation",
			Parameters: []types.Parameter{
				{Name: "nominal", Type: "number", Description: "Central value", Required: true},
				{Name: "stddev", Type: "number", Description: "Standard deviation (must be non-negative)", Required: true},
			},
			Returns: "handle",
		},
		{
			ID:          "uncertainty.constant",
			Name:        "Create Constant",
			Description: "Create an exact value with zero uncertainty",
			Parameters: []types.Parameter{
				{Name: "nominal", Type: "number", Description: "Exact value", Required: true},
			},
			Returns: "handle",
		},
		{
			ID:          "uncertainty.get",
			Name:        "Get Value",
			Description: "Read the nominal and standard deviation of a stored value",
			Parameters: []types.Parameter{
				{Name: "a", Type: "string", Description: "Value handle", Required: true},
			},
			Returns: "value",
		},
		{
			ID:          "uncertainty.independent",
			Name:        "Independent Copy",
			Description: "Create a copy that no longer correlates with the original",
			Parameters: []types.Parameter{
				{Name: "a", Type: "string", Description: "Value handle", Required: true},
			},
			Returns: "handle",
		},
		{
			ID:          "uncertainty.format",
			Name:        "Format Value",
			Description: "Render a value in fixed, scientific, or compact parenthetical notation",
			Parameters: []types.Parameter{
				{Name: "a", Type: "string", Description: "Value handle", Required: true},
				{Name: "style", Type: "string", Description: "fixed, scientific, or compact (default compact)", Required: false},
				{Name: "precision", Type: "number", Description: "Digits after the decimal point for fixed/scientific", Required: false},
			},
			Returns: "string",
		},
		{
			ID:          "uncertainty.release",
			Name:        "Release Value",
			Description: "Remove a stored value from the handle store",
			Parameters: []types.Parameter{
				{Name: "a", Type: "string", Description: "Value handle", Required: true},
			},
			Returns: "released",
		},
		{
			ID:          "uncertainty.reset",
			Name:        "Reset",
			Description: "Drop all stored values (the variable registry is untouched)",
			Parameters:  []types.Parameter{},
			Returns:     "released",
		},
		{
			ID:          "uncertainty.stats",
			Name:        "Statistics",
			Description: "Report stored value and registered variable counts",
			Parameters:  []types.Parameter{},
			Returns:     "stats",
		},
	}
}

func (p *Provider) create(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	nominal, ok := GetNumber(params, "nominal")
	if !ok {
		return Failure("nominal parameter required")
	}

	stddev, ok := GetNumber(params, "stddev")
	if !ok {
		return Failure("stddev parameter required")
	}

	v, err := uncertain.NewWith(p.reg, nominal, stddev)
	if err != nil {
		return Failure(err.Error())
	}
	return p.emit(v)
}

func (p *Provider) constant(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	nominal, ok := GetNumber(params, "nominal")
	if !ok {
		return Failure("nominal parameter required")
	}
	return p.emit(uncertain.Const(nominal))
}

func (p *Provider) get(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	id, ok := GetString(params, "a")
	if !ok {
		return Failure("a parameter required")
	}

	v, ok := p.store.Get(id)
	if !ok {
		return Failure("unknown value handle")
	}
	return Success(describe(id, v))
}

func (p *Provider) independent(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	v, ok := p.operand(params, "a")
	if !ok {
		return Failure("a parameter must reference a stored value")
	}
	return p.emit(v.IndependentCopy())
}

func (p *Provider) format(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	v, ok := p.operand(params, "a")
	if !ok {
		return Failure("a parameter must reference a stored value")
	}

	style, _ := GetString(params, "style")
	prec := 2.0
	if n, ok := GetNumber(params, "precision"); ok {
		prec = n
	}

	var text string
	switch style {
	case "fixed":
		text = uformat.Fixed(v, int(prec))
	case "scientific":
		text = uformat.Scientific(v, int(prec))
	case "compact", "":
		text = uformat.Compact(v)
	default:
		return Failure("style must be fixed, scientific, or compact")
	}

	return Success(map[string]interface{}{"text": text})
}

func (p *Provider) release(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	id, ok := GetString(params, "a")
	if !ok {
		return Failure("a parameter required")
	}

	if !p.store.Release(id) {
		return Failure("unknown value handle")
	}
	return Success(map[string]interface{}{"released": id})
}

func (p *Provider) reset(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	p.store.Clear()
	return Success(map[string]interface{}{"released": "all"})
}

func (p *Provider) stats(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return Success(map[string]interface{}{
		"stored_values":        p.store.Len(),
		"registered_variables": p.reg.Len(),
	})
}
