package db

import (
	"context"

	"github.com/TFMV/indentscore/types"
)

type DB interface {
	Initialize(ctx context.Context) error
	StoreScan(ctx context.Context, report types.ScanReport) error
}
