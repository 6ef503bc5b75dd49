package catalog

import (
	"encoding/json"
	"fmt"
	"math"
)

// Price is a float64 that survives JSON round trips for values JSON cannot
// express natively. NaN and the infinities are encoded as the string
// sentinels "NaN", "Infinity" and "-Infinity"; every other value is a plain
// number. Decoding accepts the same sentinels, case-sensitively.
type Price float64

func (p Price) MarshalJSON() ([]byte, error) {
	f := float64(p)
	switch {
	case math.IsNaN(f):
		return []byte(`"NaN"`), nil
	case math.IsInf(f, 1):
		return []byte(`"Infinity"`), nil
	case math.IsInf(f, -1):
		return []byte(`"-Infinity"`), nil
	}
	return json.Marshal(f)
}

func (p *Price) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*p = Price(f)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("price: cannot decode %s", string(data))
	}

	switch s {
	case "NaN":
		*p = Price(math.NaN())
	case "Infinity":
		*p = Price(math.Inf(1))
	case "-Infinity":
		*p = Price(math.Inf(-1))
	default:
		return fmt.Errorf("price: unknown sentinel %q", s)
	}
	return nil
}

// Product is the catalog entity. ID is nil until the store assigns one.
// Name is nullable and has no length limit.
type Product struct {
	ID    *int64  `json:"id"`
	Name  *string `json:"name"`
	Price Price   `json:"price"`
}

// Clone returns a copy that shares no pointers with the receiver, so a
// product handed across the store boundary cannot alias internal state.
func (p Product) Clone() Product {
	c := p
	if p.ID != nil {
		id := *p.ID
		c.ID = &id
	}
	if p.Name != nil {
		name := *p.Name
		c.Name = &name
	}
	return c
}
