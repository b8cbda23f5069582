package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/lib/pq"
)

// StringArray is a custom type for handling TEXT[] columns in PostgreSQL
type StringArray []string

// Value implements the driver.Valuer interface
func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return nil, nil
	}
	return pq.Array(a).Value()
}

// Scan implements the sql.Scanner interface
func (a *StringArray) Scan(src interface{}) error {
	if src == nil {
		*a = nil
		return nil
	}
	slice := (*[]string)(a)
	return pq.Array(slice).Scan(src)
}

// TicketTier is one priced admission class of an event
type TicketTier struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// TicketTierList is a custom type for handling the JSONB ticket_tiers column
type TicketTierList []TicketTier

// Value implements the driver.Valuer interface
func (t TicketTierList) Value() (driver.Value, error) {
	if t == nil {
		return nil, nil
	}
	return json.Marshal(t)
}

// Scan implements the sql.Scanner interface
func (t *TicketTierList) Scan(src interface{}) error {
	if src == nil {
		*t = nil
		return nil
	}

	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type for TicketTierList: %T", src)
	}

	return json.Unmarshal(data, t)
}

// PriceFor returns the unit price for the given ticket type. An unknown or
// missing type falls back to the first tier; an empty tier list prices at zero.
func (t TicketTierList) PriceFor(ticketType *string) float64 {
	if len(t) == 0 {
		return 0
	}
	if ticketType != nil {
		for _, tier := range t {
			if tier.Name == *ticketType {
				return tier.Price
			}
		}
	}
	return t[0].Price
}
