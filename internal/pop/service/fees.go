package service

// StaticFees is a FeePolicy with fixed values.
type StaticFees struct {
	PerByte int64
	Max     int64
}

// FeePerByte implements FeePolicy.
func (f StaticFees) FeePerByte() int64 { return f.PerByte }

// MaxFee implements FeePolicy.
func (f StaticFees) MaxFee() int64 { return f.Max }
