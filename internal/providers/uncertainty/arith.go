package uncertainty

import (
	"context"

	"github.com/GriffinCanCode/uncertain/internal/shared/types"
	"github.com/GriffinCanCode/uncertain/internal/uncertain"
)

func (p *Provider) arithTools() []types.Tool {
	handle := func(name, desc string) types.Parameter {
		return types.Parameter{Name: name, Type: "string", Description: desc, Required: true}
	}

	binary := func(id, name, desc string) types.Tool {
		return types.Tool{
			ID:          id,
			Name:        name,
			Description: desc,
			Parameters: []types.Parameter{
				handle("a", "Left operand handle"),
				handle("b", "Right operand handle"),
			},
			Returns: "handle",
		}
	}

	return []types.Tool{
		binary("uncertainty.add", "Add", "Add two values with correlation tracking"),
		binary("uncertainty.subtract", "Subtract", "Subtract two values; a value minus itself is exactly zero"),
		binary("uncertainty.multiply", "Multiply", "Multiply two values with correlation tracking"),
		binary("uncertainty.divide", "Divide", "Divide two values; fails on a zero nominal divisor"),
		binary("uncertainty.pow", "Power", "Raise one value to another; the base nominal must be positive"),
		{
			ID:          "uncertainty.scale",
			Name:        "Scale",
			Description: "Multiply a value by an exact scalar",
			Parameters: []types.Parameter{
				handle("a", "Value handle"),
				{Name: "factor", Type: "number", Description: "Exact scale factor", Required: true},
			},
			Returns: "handle",
		},
		{
			ID:          "uncertainty.neg",
			Name:        "Negate",
			Description: "Negate a value",
			Parameters:  []types.Parameter{handle("a", "Value handle")},
			Returns:     "handle",
		},
	}
}

// binaryOperands resolves the a and b handle parameters.
func (p *Provider) binaryOperands(params map[string]interface{}) (uncertain.Value, uncertain.Value, *types.Result) {
	a, ok := p.operand(params, "a")
	if !ok {
		res, _ := Failure("a parameter must reference a stored value")
		return uncertain.Value{}, uncertain.Value{}, res
	}

	b, ok := p.operand(params, "b")
	if !ok {
		res, _ := Failure("b parameter must reference a stored value")
		return uncertain.Value{}, uncertain.Value{}, res
	}

	return a, b, nil
}

func (p *Provider) add(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	a, b, fail := p.binaryOperands(params)
	if fail != nil {
		return fail, nil
	}
	return p.emit(a.Add(b))
}

func (p *Provider) subtract(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	a, b, fail := p.binaryOperands(params)
	if fail != nil {
		return fail, nil
	}
	return p.emit(a.Sub(b))
}

func (p *Provider) multiply(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	a, b, fail := p.binaryOperands(params)
	if fail != nil {
		return fail, nil
	}
	return p.emit(a.Mul(b))
}

func (p *Provider) divide(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	a, b, fail := p.binaryOperands(params)
	if fail != nil {
		return fail, nil
	}

	q, err := a.Div(b)
	if err != nil {
		return Failure(err.Error())
	}
	return p.emit(q)
}

func (p *Provider) pow(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	a, b, fail := p.binaryOperands(params)
	if fail != nil {
		return fail, nil
	}

	r, err := uncertain.Pow(a, b)
	if err != nil {
		return Failure(err.Error())
	}
	return p.emit(r)
}

func (p *Provider) scale(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	a, ok := p.operand(params, "a")
	if !ok {
		return Failure("a parameter must reference a stored value")
	}

	factor, ok := GetNumber(params, "factor")
	if !ok {
		return Failure("factor parameter required")
	}
	return p.emit(a.MulScalar(factor))
}

func (p *Provider) neg(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	a, ok := p.operand(params, "a")
	if !ok {
		return Failure("a parameter must reference a stored value")
	}
	return p.emit(a.Neg())
}
