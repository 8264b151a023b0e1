package overtime

import "context"

type OvertimeService interface {
	CreateRequest(ctx context.Context, req CreateOvertimeRequestRequest) (OvertimeRequestResponse, error)
	GetRequest(ctx context.Context, id string) (OvertimeRequestResponse, error)
	ListRequests(ctx context.Context, filter OvertimeRequestFilter) ([]OvertimeRequestResponse, int64, error)
	Approve(ctx context.Context, id string) (OvertimeRequestResponse, error)
	Reject(ctx context.Context, id string) (OvertimeRequestResponse, error)
	GetTracking(ctx context.Context, employeeID string, year, month int) (TrackingResponse, error)
}
