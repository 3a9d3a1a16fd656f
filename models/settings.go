// models/settings.go
package models

import "time"

// ExchangeRateSettings is the singleton conversion configuration. BuyRate
// converts a SAR cost price into EGP, SellRate a SAR sell price; the two are
// applied asymmetrically on purpose. Every profit computation fetches the
// record at call time and passes it in explicitly.
type ExchangeRateSettings struct {
	BuyRate   float64   `bson:"buyRate" json:"buyRate"`
	SellRate  float64   `bson:"sellRate" json:"sellRate"`
	UpdatedBy string    `bson:"updatedBy,omitempty" json:"updatedBy,omitempty"`
	UpdatedAt time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
