package handler

import (
	"context"

	"nft-ticketing-backend/event"
	"nft-ticketing-backend/locator"
	"nft-ticketing-backend/redemption"
	"nft-ticketing-backend/sale"
	"nft-ticketing-backend/staff"
)

type SaleCompiler interface {
	Compile(in sale.Input) (*sale.Params, error)
}

// CompileObserver is told about every compilation attempt.
type CompileObserver interface {
	ObserveCompile(err error)
}

type Events interface {
	Create(ctx context.Context, e event.Event) (event.Event, error)
	Get(ctx context.Context, id string) (event.Event, error)
}

// Tickets is the redemption state machine.
type Tickets interface {
	Create(ctx context.Context, key redemption.Key, eventID, tierID string) (redemption.Record, error)
	Lookup(ctx context.Context, key redemption.Key) (redemption.Record, error)
	Redeem(ctx context.Context, key redemption.Key, validatedBy string) (redemption.Record, error)
}

type ReferenceIssuer interface {
	Reference(key redemption.Key) (string, error)
	Issue(key redemption.Key) (locator.Ticket, error)
}

type ReferenceResolver interface {
	ResolveReference(ref string) (redemption.Key, error)
}

type StaffLogin interface {
	Login(ctx context.Context, staffID, code string) (staff.Session, error)
}
