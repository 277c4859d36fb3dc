package architecture

import (
	"strings"
)

type RegisterCategory int

const (
	// Usable for signed/unsigned int and pointer operations.
	GeneralCategory = RegisterCategory(iota)

	// Single precision floating point registers.
	SingleFloatCategory

	// Double precision floating point registers.
	DoubleFloatCategory
)

func (category RegisterCategory) String() string {
	switch category {
	case GeneralCategory:
		return "general"
	case SingleFloatCategory:
		return "single"
	case DoubleFloatCategory:
		return "double"
	default:
		return "unknown"
	}
}

func (category RegisterCategory) CanStore(kind PlatformKind) bool {
	switch category {
	case GeneralCategory:
		switch kind {
		case Byte, HalfWord, Word, ExtendedWord:
			return true
		default:
			return false
		}
	case SingleFloatCategory:
		return kind == Single
	case DoubleFloatCategory:
		return kind == Double
	default:
		ShouldNotReachHere("unknown register category %d", int(category))
		return false
	}
}

// Register is an immutable physical register.  Registers are created once
// during package initialization and are compared by identity.
type Register struct {
	// Unique within the target's catalog.
	Number int

	// The register's hardware encoding within its category.
	Encoding int

	Name string

	Category RegisterCategory

	// Registers that share storage with this register.  e.g., on sparc, a
	// low double register d2k is formed by the single registers f2k and f2k+1.
	Aliases []*Register
}

func NewRegister(
	number int,
	encoding int,
	name string,
	category RegisterCategory,
	aliases ...*Register,
) *Register {
	Assert(name != "", "register %d has no name", number)

	return &Register{
		Number:   number,
		Encoding: encoding,
		Name:     name,
		Category: category,
		Aliases:  aliases,
	}
}

func (reg *Register) String() string {
	if reg == nil {
		return "-"
	}
	return reg.Name
}

func (reg *Register) Overlaps(other *Register) bool {
	if reg == other {
		return true
	}

	for _, alias := range reg.Aliases {
		if alias == other {
			return true
		}
	}

	for _, alias := range other.Aliases {
		if alias == reg {
			return true
		}
	}

	return false
}

// RegisterArray is an ordered, fixed size sequence of registers.  Entries may
// be nil to mark intentionally unused positions (e.g., the odd positions of a
// double parameter register array).
//
// Do not modify a RegisterArray's underlying slice after construction.
type RegisterArray []*Register

func NewRegisterArray(registers ...*Register) RegisterArray {
	array := make(RegisterArray, len(registers))
	copy(array, registers)
	return array
}

func (array RegisterArray) Len() int {
	return len(array)
}

func (array RegisterArray) Get(idx int) *Register {
	return array[idx]
}

func (array RegisterArray) IndexOf(reg *Register) int {
	if reg == nil {
		return -1
	}

	for idx, entry := range array {
		if entry == reg {
			return idx
		}
	}
	return -1
}

func (array RegisterArray) Contains(reg *Register) bool {
	return array.IndexOf(reg) >= 0
}

// Returns the array with placeholder entries removed.
func (array RegisterArray) NonNil() RegisterArray {
	result := make(RegisterArray, 0, len(array))
	for _, reg := range array {
		if reg != nil {
			result = append(result, reg)
		}
	}
	return result
}

func (array RegisterArray) Names() []string {
	names := make([]string, 0, len(array))
	for _, reg := range array {
		names = append(names, reg.String())
	}
	return names
}

func (array RegisterArray) String() string {
	return "[" + strings.Join(array.Names(), " ") + "]"
}

// RegisterCatalog is the validated set of every physical register of a
// target, in catalog order.
//
// Assumptions:
//
// 1. Each architecture has exactly one stack pointer register.  The stack
// pointer is always live and is never allocatable.
//
// 2. Register numbers and names are unique.  Aliased registers must also be
// part of the catalog.
type RegisterCatalog struct {
	StackPointer *Register

	All RegisterArray

	General     RegisterArray
	SingleFloat RegisterArray
	DoubleFloat RegisterArray

	byName map[string]*Register
}

func NewRegisterCatalog(
	stackPointer *Register,
	registers ...*Register,
) *RegisterCatalog {
	catalog := &RegisterCatalog{
		StackPointer: stackPointer,
		All:          NewRegisterArray(registers...),
		byName:       map[string]*Register{},
	}

	numbers := map[int]struct{}{}
	for _, register := range registers {
		Assert(register != nil, "nil register in catalog")

		_, ok := catalog.byName[register.Name]
		Assert(!ok, "added duplicate register: %s", register.Name)
		catalog.byName[register.Name] = register

		_, ok = numbers[register.Number]
		Assert(!ok, "added duplicate register number: %s", register.Name)
		numbers[register.Number] = struct{}{}

		catalog.add(register)
	}

	Assert(stackPointer != nil, "no stack pointer register specified")
	Assert(
		catalog.All.Contains(stackPointer),
		"stack pointer not in catalog: %s",
		stackPointer.Name)
	Assert(
		stackPointer.Category == GeneralCategory,
		"stack pointer register must be a general register")

	for _, register := range registers {
		for _, alias := range register.Aliases {
			Assert(
				catalog.All.Contains(alias),
				"register %s aliases unknown register %s",
				register.Name,
				alias)
		}
	}

	return catalog
}

func (catalog *RegisterCatalog) add(register *Register) {
	switch register.Category {
	case GeneralCategory:
		catalog.General = append(catalog.General, register)
	case SingleFloatCategory:
		catalog.SingleFloat = append(catalog.SingleFloat, register)
	case DoubleFloatCategory:
		catalog.DoubleFloat = append(catalog.DoubleFloat, register)
	default:
		ShouldNotReachHere(
			"added register with unknown category: %s",
			register.Name)
	}
}

func (catalog *RegisterCatalog) Lookup(name string) (*Register, bool) {
	reg, ok := catalog.byName[name]
	return reg, ok
}

type SaveClass int

const (
	// Never allocatable (stack pointer, zero register, thread registers, ...)
	Reserved = SaveClass(iota)

	// Preserved across calls by the callee (or by the hardware, e.g., sparc's
	// register windows).
	CalleeSave

	// Clobbered by calls.
	CallerSave
)

func (class SaveClass) String() string {
	switch class {
	case Reserved:
		return "reserved"
	case CalleeSave:
		return "callee-save"
	case CallerSave:
		return "caller-save"
	default:
		return "unknown"
	}
}

// Per register attributes, indexed by register number.
type RegisterAttributes struct {
	CallerSave  bool
	CalleeSave  bool
	Allocatable bool
}
