package config

import (
	"math"

	"mit.edu/dsg/zero100/common"
)

// Config carries the knobs of the zero100 extension. The relation name is
// the only input a user normally changes; the rest pin the synthetic scan.
type Config struct {
	// TableName is the relation whose scans are served by the custom scan.
	TableName string
	// BlockCapacity is the number of integers a scan materializes at Begin.
	BlockCapacity int
	// ScanRows is the row estimate attached to the proposed scan path.
	ScanRows float64
	// FusedRows is the row estimate attached to the fused aggregate path.
	FusedRows float64
}

func Default() Config {
	return Config{
		TableName:     "zero100",
		BlockCapacity: 100,
		ScanRows:      100,
		FusedRows:     1,
	}
}

// Validate rejects configurations the operators cannot honour. The fused
// aggregate emits sum(0..capacity-1) in a 32-bit column, which bounds the capacity.
func (c Config) Validate() error {
	if c.TableName == "" {
		return common.Errorf(common.InvalidPlanError, "zero100: empty table name")
	}
	if c.BlockCapacity <= 0 {
		return common.Errorf(common.InvalidPlanError, "zero100: block capacity must be positive, got %d", c.BlockCapacity)
	}
	n := int64(c.BlockCapacity)
	if n > math.MaxInt32 || !common.FitsInt32(n*(n-1)/2) {
		return common.Errorf(common.InvalidPlanError, "zero100: block capacity %d overflows the int4 sum column", c.BlockCapacity)
	}
	if c.ScanRows < 0 || c.FusedRows < 0 {
		return common.Errorf(common.InvalidPlanError, "zero100: negative row estimate")
	}
	return nil
}
