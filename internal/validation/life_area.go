package validation

import "github.com/forgo/northstar/internal/model"

// ValidateLifeAreaInput validates name, color, vision, strategy, then order.
func ValidateLifeAreaInput(raw Input, opts Options) Result[model.LifeAreaInput] {
	var out model.LifeAreaInput

	if v, ok := raw.take("name", opts.Partial); ok {
		name, ferr := NonEmptyTrimmed(model.LabelName, v, model.MaxLifeAreaNameLength)
		if ferr != nil {
			return Fail[model.LifeAreaInput](ferr.Message)
		}
		out.Name = model.Given(name)
	}

	if v, ok := raw.take("color", opts.Partial); ok {
		color, ferr := HexColor(v)
		if ferr != nil {
			return Fail[model.LifeAreaInput](ferr.Message)
		}
		out.Color = model.Given(color)
	}

	if v, ok := raw.take("vision", opts.Partial); ok {
		vision, ferr := OptionalTrimmed(model.LabelVision, v, model.MaxLifeAreaVisionLength, true)
		if ferr != nil {
			return Fail[model.LifeAreaInput](ferr.Message)
		}
		out.Vision = model.Given(vision)
	}

	if v, ok := raw.take("strategy", opts.Partial); ok {
		strategy, ferr := OptionalTrimmed(model.LabelStrategy, v, model.MaxLifeAreaStrategyLength, true)
		if ferr != nil {
			return Fail[model.LifeAreaInput](ferr.Message)
		}
		out.Strategy = model.Given(strategy)
	}

	// Order has no bounds here; placement clamps it.
	if v, ok := raw["order"]; ok {
		order, whole := wholeNumber(v)
		if !whole {
			return Fail[model.LifeAreaInput](model.MsgOrderWhole)
		}
		out.Order = model.Given(order)
	}

	return Ok(out)
}
