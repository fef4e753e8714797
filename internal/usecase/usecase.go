package usecase

import "context"

type PriceUC interface {
	GetComponentPrice(ctx context.Context, req *GetPriceReq) (*GetPriceRes, error)
	RegisterComponent(ctx context.Context, req *RegisterComponentReq) (*OutboxEvent, error)
}
