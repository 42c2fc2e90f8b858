package model

// Life area constraints
const (
	MaxLifeAreaNameLength     = 50
	MaxLifeAreaVisionLength   = 500
	MaxLifeAreaStrategyLength = 500
)

// LifeAreaInput is a validated life area payload.
type LifeAreaInput struct {
	Name     Field[string]
	Color    Field[*string] // "#" + 6 hex digits, or nil
	Vision   Field[*string]
	Strategy Field[*string]
	Order    Field[int] // unbounded; placement is clamped by the ordering helpers
}

// Raw renders the input back into its payload shape.
func (in LifeAreaInput) Raw() map[string]any {
	raw := map[string]any{}
	putValue(raw, "name", in.Name)
	putNullable(raw, "color", in.Color)
	putNullable(raw, "vision", in.Vision)
	putNullable(raw, "strategy", in.Strategy)
	putValue(raw, "order", in.Order)
	return raw
}
