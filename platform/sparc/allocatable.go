package sparc

import (
	"sync"

	"github.com/pattyshack/regconfig/architecture"
)

var (
	// Indexed by excludeHeapBase.  Each entry is computed at most once and then
	// shared by every register config of the same target configuration.
	allocatableRegisters = [2]func() architecture.RegisterArray{
		sync.OnceValue(func() architecture.RegisterArray {
			return BuildAllocatable(
				Catalog.All,
				reservedRegisters,
				HeapBaseRegister,
				false)
		}),
		sync.OnceValue(func() architecture.RegisterArray {
			return BuildAllocatable(
				Catalog.All,
				reservedRegisters,
				HeapBaseRegister,
				true)
		}),
	}
)

// Allocatable returns the memoized allocatable register set for the given
// heap base configuration.
func Allocatable(excludeHeapBase bool) architecture.RegisterArray {
	if excludeHeapBase {
		return allocatableRegisters[1]()
	}
	return allocatableRegisters[0]()
}

// BuildAllocatable returns the registers in all (in order) minus the reserved
// registers and, when excludeHeapBase is set, minus heapBase.
//
// reserved must be a subset of all, and heapBase must not be reserved when
// excluded; violations indicate a broken target description and panic.
func BuildAllocatable(
	all architecture.RegisterArray,
	reserved architecture.RegisterArray,
	heapBase *architecture.Register,
	excludeHeapBase bool,
) architecture.RegisterArray {
	for _, reg := range reserved {
		architecture.Assert(
			all.Contains(reg),
			"reserved register %s is not a target register",
			reg)
	}

	expectedSize := len(all) - len(reserved)
	if excludeHeapBase {
		architecture.Assert(heapBase != nil, "no heap base register")
		expectedSize--
	}

	result := make(architecture.RegisterArray, 0, expectedSize)
	for _, reg := range all {
		if reserved.Contains(reg) {
			continue
		}

		if excludeHeapBase && reg == heapBase {
			continue
		}

		result = append(result, reg)
	}

	architecture.Assert(
		len(result) == expectedSize,
		"allocatable register count mismatch (expected %d, found %d)",
		expectedSize,
		len(result))

	return result
}

// FilterByKind returns the registers (in order) that can hold a value of the
// given platform kind.  nil entries are dropped.
func FilterByKind(
	registers architecture.RegisterArray,
	kind architecture.PlatformKind,
) architecture.RegisterArray {
	result := architecture.RegisterArray{}
	for _, reg := range registers {
		if reg != nil && reg.Category.CanStore(kind) {
			result = append(result, reg)
		}
	}
	return result
}
