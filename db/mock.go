package db

import (
	"context"

	"github.com/TFMV/indentscore/types"
)

type MockDB struct {
	InitializeFunc func(ctx context.Context) error
	StoreScanFunc  func(ctx context.Context, report types.ScanReport) error
}

func NewMockDB() *MockDB {
	return &MockDB{
		InitializeFunc: func(ctx context.Context) error {
			return nil
		},
	}
}

func (m *MockDB) Initialize(ctx context.Context) error {
	return m.InitializeFunc(ctx)
}

func (m *MockDB) StoreScan(ctx context.Context, report types.ScanReport) error {
	if m.StoreScanFunc != nil {
		return m.StoreScanFunc(ctx, report)
	}
	return nil
}
