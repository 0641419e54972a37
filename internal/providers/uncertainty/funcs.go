package uncertainty

import (
	"context"

	"github.com/GriffinCanCode/uncertain/internal/shared/types"
	"github.com/GriffinCanCode/uncertain/internal/uncertain"
	"github.com/GriffinCanCode/uncertain/internal/uncertain/umath"
)

// unaryFuncs maps tool IDs to their chain-rule implementations. Functions
// with restricted domains report uncertain.ErrDomain through the error.
var unaryFuncs = map[string]func(uncertain.Value) (uncertain.Value, error){
	"uncertainty.sin":   total(umath.Sin),
	"uncertainty.cos":   total(umath.Cos),
	"uncertainty.tan":   umath.Tan,
	"uncertainty.asin":  umath.Asin,
	"uncertainty.acos":  umath.Acos,
	"uncertainty.atan":  total(umath.Atan),
	"uncertainty.sinh":  total(umath.Sinh),
	"uncertainty.cosh":  total(umath.Cosh),
	"uncertainty.tanh":  total(umath.Tanh),
	"uncertainty.asinh": total(umath.Asinh),
	"uncertainty.acosh": umath.Acosh,
	"uncertainty.atanh": umath.Atanh,
	"uncertainty.exp":   total(umath.Exp),
	"uncertainty.log":   umath.Log,
	"uncertainty.log10": umath.Log10,
	"uncertainty.sqrt":  umath.Sqrt,
	"uncertainty.abs":   total(umath.Abs),
}

// total adapts a function defined everywhere to the fallible signature.
func total(f func(uncertain.Value) uncertain.Value) func(uncertain.Value) (uncertain.Value, error) {
	return func(x uncertain.Value) (uncertain.Value, error) {
		return f(x), nil
	}
}

func (p *Provider) funcTools() []types.Tool {
	unary := func(id, name, desc string) types.Tool {
		return types.Tool{
			ID:          id,
			Name:        name,
			Description: desc,
			Parameters: []types.Parameter{
				{Name: "a", Type: "string", Description: "Value handle", Required: true},
			},
			Returns: "handle",
		}
	}

	binary := func(id, name, desc, first, second string) types.Tool {
		return types.Tool{
			ID:          id,
			Name:        name,
			Description: desc,
			Parameters: []types.Parameter{
				{Name: "a", Type: "string", Description: first, Required: true},
				{Name: "b", Type: "string", Description: second, Required: true},
			},
			Returns: "handle",
		}
	}

	return []types.Tool{
		unary("uncertainty.sin", "Sine", "Sine with first-order propagation"),
		unary("uncertainty.cos", "Cosine", "Cosine with first-order propagation"),
		unary("uncertainty.tan", "Tangent", "Tangent; fails where cosine vanishes"),
		unary("uncertainty.asin", "Arcsine", "Arcsine; the nominal must lie strictly inside (-1, 1)"),
		unary("uncertainty.acos", "Arccosine", "Arccosine; the nominal must lie strictly inside (-1, 1)"),
		unary("uncertainty.atan", "Arctangent", "Arctangent with first-order propagation"),
		unary("uncertainty.sinh", "Hyperbolic Sine", "Hyperbolic sine with first-order propagation"),
		unary("uncertainty.cosh", "Hyperbolic Cosine", "Hyperbolic cosine with first-order propagation"),
		unary("uncertainty.tanh", "Hyperbolic Tangent", "Hyperbolic tangent with first-order propagation"),
		unary("uncertainty.asinh", "Inverse Hyperbolic Sine", "Inverse hyperbolic sine with first-order propagation"),
		unary("uncertainty.acosh", "Inverse Hyperbolic Cosine", "Inverse hyperbolic cosine; the nominal must exceed 1"),
		unary("uncertainty.atanh", "Inverse Hyperbolic Tangent", "Inverse hyperbolic tangent; the nominal must lie strictly inside (-1, 1)"),
		unary("uncertainty.exp", "Exponential", "Natural exponential with first-order propagation"),
		unary("uncertainty.log", "Natural Logarithm", "Natural logarithm; the nominal must be positive"),
		unary("uncertainty.log10", "Base-10 Logarithm", "Base-10 logarithm; the nominal must be positive"),
		unary("uncertainty.sqrt", "Square Root", "Square root; the nominal must be positive"),
		unary("uncertainty.abs", "Absolute Value", "Absolute value with sign-based propagation"),
		binary("uncertainty.atan2", "Two-Argument Arctangent", "Angle of the vector (b, a); fails at the origin", "y operand handle", "x operand handle"),
		binary("uncertainty.hypot", "Hypotenuse", "Euclidean norm of two values with correlation tracking", "First operand handle", "Second operand handle"),
	}
}

func (p *Provider) applyUnary(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	a, ok := p.operand(params, "a")
	if !ok {
		return Failure("a parameter must reference a stored value")
	}

	f, ok := unaryFuncs[toolID]
	if !ok {
		return Failure("unknown tool: " + toolID)
	}

	r, err := f(a)
	if err != nil {
		return Failure(err.Error())
	}
	return p.emit(r)
}

func (p *Provider) atan2(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	y, x, fail := p.binaryOperands(params)
	if fail != nil {
		return fail, nil
	}

	r, err := umath.Atan2(y, x)
	if err != nil {
		return Failure(err.Error())
	}
	return p.emit(r)
}

func (p *Provider) hypot(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	a, b, fail := p.binaryOperands(params)
	if fail != nil {
		return fail, nil
	}
	return p.emit(umath.Hypot(a, b))
}
