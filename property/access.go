package property

// Access describes which operations a property supports.
type Access uint8

const (
	// AccessRead allows Get.
	AccessRead Access = 1 << iota

	// AccessWrite allows Set.
	AccessWrite

	// Common access combinations.

	ReadOnly  = AccessRead
	WriteOnly = AccessWrite
	ReadWrite = AccessRead | AccessWrite
)

// CanRead returns true if reading is allowed.
func (a Access) CanRead() bool { return a&AccessRead != 0 }

// CanWrite returns true if writing is allowed.
func (a Access) CanWrite() bool { return a&AccessWrite != 0 }

func (a Access) String() string {
	switch a {
	case ReadOnly:
		return "read-only"
	case WriteOnly:
		return "write-only"
	case ReadWrite:
		return "read-write"
	default:
		return "none"
	}
}

func accessOf(query, set string) Access {
	var a Access
	if query != "" {
		a |= AccessRead
	}
	if set != "" {
		a |= AccessWrite
	}

	return a
}
