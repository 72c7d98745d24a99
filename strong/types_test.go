package strong_test

import "github.com/authcorp/libs/go/strongof/strong"

type (
	UserID      struct{ strong.Guid[UserID] }
	TenantID    struct{ strong.Guid[TenantID] }
	OrderID     struct{ strong.Int32[OrderID] }
	Quantity    struct{ strong.Int32[Quantity] }
	Sequence    struct{ strong.Int64[Sequence] }
	Price       struct{ strong.Decimal[Price] }
	Ratio       struct{ strong.Double[Ratio] }
	Grade       struct{ strong.Char[Grade] }
	IsActive    struct{ strong.Boolean[IsActive] }
	CreatedAt   struct{ strong.DateTime[CreatedAt] }
	ScheduledAt struct{ strong.DateTimeOffset[ScheduledAt] }
	Timeout     struct{ strong.TimeSpan[Timeout] }
	FirstName   struct{ strong.Text[FirstName] }
	LastName    struct{ strong.Text[LastName] }
)
