// Package strong provides strongly typed wrappers around primitive values.
//
// A strong type holds exactly one immutable value of a primitive type while
// remaining a distinct type to the compiler, so an order id can never be
// passed where a customer id is expected. Concrete types are declared by
// embedding one of the specializations with the concrete type itself as the
// type argument:
//
//	type UserID struct{ strong.Guid[UserID] }
//	type OrderID struct{ strong.Int32[OrderID] }
//	type CustomerName struct{ strong.Text[CustomerName] }
//
// Values are created through the generic factories, which never validate and
// never fail:
//
//	id := strong.From[OrderID](int32(42))
//	user := strong.NewGuid[UserID]()
//	name, err := strong.Parse[CustomerName]("Ada")
//
// Available specializations:
//
//   - Text: strings with trimming, casing and containment helpers
//   - Guid: RFC 4122 identifiers (github.com/google/uuid)
//   - Int32, Int64: signed integers
//   - Decimal: arbitrary precision decimals (github.com/shopspring/decimal)
//   - Double: float64
//   - Char: a single rune
//   - Boolean: bool
//   - DateTime, DateTimeOffset: points in time
//   - TimeSpan: durations with ISO 8601 text form
//
// Equality is value based. Two wrappers are equal only when they share the
// same concrete type and wrap equal values; a wrapper also equals a raw value
// of its underlying type. CompareTo reports an error for incompatible
// arguments while Less, Greater and friends return false instead.
//
// Every wrapper implements encoding.TextMarshaler, json.Marshaler and
// yaml.Marshaler with their matching unmarshalers, plus toml.Unmarshaler, so
// it can travel through configuration files and API payloads unchanged.
package strong
