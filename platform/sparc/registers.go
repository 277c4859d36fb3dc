package sparc

import (
	"fmt"

	"github.com/pattyshack/regconfig/architecture"
)

const (
	WordSize = 8

	// Every sparc frame reserves space at the stack pointer for the register
	// window (16 registers: locals and ins) to be spilled by the trap handler.
	// Stack arguments start after this area.
	RegisterSafeAreaSize = 16 * WordSize

	numGeneralRegisters = 32
	numSingleRegisters  = 32
	numDoubleRegisters  = 32

	firstSingleNumber = numGeneralRegisters
	firstDoubleNumber = firstSingleNumber + numSingleRegisters
)

var (
	g0 = newGeneral(0, "g0")
	g1 = newGeneral(1, "g1")
	g2 = newGeneral(2, "g2") // runtime thread
	g3 = newGeneral(3, "g3")
	g4 = newGeneral(4, "g4")
	g5 = newGeneral(5, "g5")
	g6 = newGeneral(6, "g6") // compressed heap base
	g7 = newGeneral(7, "g7") // os thread pointer

	o0 = newGeneral(8, "o0")
	o1 = newGeneral(9, "o1")
	o2 = newGeneral(10, "o2")
	o3 = newGeneral(11, "o3")
	o4 = newGeneral(12, "o4")
	o5 = newGeneral(13, "o5")
	o6 = newGeneral(14, "o6") // stack pointer
	o7 = newGeneral(15, "o7") // call link

	l0 = newGeneral(16, "l0")
	l1 = newGeneral(17, "l1")
	l2 = newGeneral(18, "l2")
	l3 = newGeneral(19, "l3")
	l4 = newGeneral(20, "l4")
	l5 = newGeneral(21, "l5")
	l6 = newGeneral(22, "l6")
	l7 = newGeneral(23, "l7")

	i0 = newGeneral(24, "i0")
	i1 = newGeneral(25, "i1")
	i2 = newGeneral(26, "i2")
	i3 = newGeneral(27, "i3")
	i4 = newGeneral(28, "i4")
	i5 = newGeneral(29, "i5")
	i6 = newGeneral(30, "i6") // frame pointer
	i7 = newGeneral(31, "i7") // return address

	sp = o6
	fp = i6

	singles = newSingles()
	doubles = newDoubles(singles)

	f0, f1, f2, f3, f4, f5, f6, f7 = singles[0], singles[1], singles[2],
		singles[3], singles[4], singles[5], singles[6], singles[7]

	d0, d2, d4, d6 = doubleReg(0), doubleReg(2), doubleReg(4), doubleReg(6)

	Catalog = architecture.NewRegisterCatalog(
		sp,
		append(
			append(
				architecture.RegisterArray{
					g0, g1, g2, g3, g4, g5, g6, g7,
					o0, o1, o2, o3, o4, o5, o6, o7,
					l0, l1, l2, l3, l4, l5, l6, l7,
					i0, i1, i2, i3, i4, i5, i6, i7,
				},
				singles...),
			doubles...)...)

	ThreadRegister   = g2
	HeapBaseRegister = g6
	StackPointer     = sp
	FramePointer     = fp

	// Never allocatable.
	reservedRegisters = architecture.NewRegisterArray(
		g0, // always zero
		g2, // runtime thread
		g7, // os thread pointer
		sp,
		o7, // overwritten by call
		fp,
		i7, // return address
	)

	// Registers saved by the callee.  This lists all locals and ins, which are
	// saved in the register window.
	calleeSaveRegisters = architecture.NewRegisterArray(
		l0, l1, l2, l3, l4, l5, l6, l7,
		i0, i1, i2, i3, i4, i5, i6, i7)

	callerParameterRegisters = architecture.NewRegisterArray(
		o0, o1, o2, o3, o4, o5)
	calleeParameterRegisters = architecture.NewRegisterArray(
		i0, i1, i2, i3, i4, i5)

	// The managed convention numbers single and double registers in the same
	// space: a double takes an even position and consumes two single positions.
	managedFloatParameterRegisters = architecture.NewRegisterArray(
		f0, f1, f2, f3, f4, f5, f6, f7)
	managedDoubleParameterRegisters = architecture.NewRegisterArray(
		d0, nil, d2, nil, d4, nil, d6, nil)

	// The native convention passes floats in odd single registers and doubles
	// in even double registers.
	nativeFloatParameterRegisters = architecture.NewRegisterArray(
		singles[1], singles[3], singles[5], singles[7],
		singles[9], singles[11], singles[13], singles[15],
		singles[17], singles[19], singles[21], singles[23],
		singles[25], singles[27], singles[29], singles[31])
	nativeDoubleParameterRegisters = architecture.NewRegisterArray(
		doubleReg(0), doubleReg(2), doubleReg(4), doubleReg(6),
		doubleReg(8), doubleReg(10), doubleReg(12), doubleReg(14),
		doubleReg(16), doubleReg(18), doubleReg(20), doubleReg(22),
		doubleReg(24), doubleReg(26), doubleReg(28), doubleReg(30))

	floatReturnRegister  = f0
	doubleReturnRegister = d0
)

func newGeneral(number int, name string) *architecture.Register {
	return architecture.NewRegister(
		number,
		number,
		name,
		architecture.GeneralCategory)
}

func newSingles() architecture.RegisterArray {
	result := make(architecture.RegisterArray, 0, numSingleRegisters)
	for idx := 0; idx < numSingleRegisters; idx++ {
		result = append(
			result,
			architecture.NewRegister(
				firstSingleNumber+idx,
				idx,
				fmt.Sprintf("f%d", idx),
				architecture.SingleFloatCategory))
	}
	return result
}

// Double registers are named by their even single register number: d0, d2,
// ..., d62.  d0 - d30 overlap the single register pairs; the 5-bit encoding
// of d32 - d62 moves bit 5 into bit 0.
func newDoubles(singles architecture.RegisterArray) architecture.RegisterArray {
	result := make(architecture.RegisterArray, 0, numDoubleRegisters)
	for idx := 0; idx < numDoubleRegisters; idx++ {
		regNum := 2 * idx

		var aliases []*architecture.Register
		if regNum < numSingleRegisters {
			aliases = []*architecture.Register{singles[regNum], singles[regNum+1]}
		}

		encoding := (regNum & 0x1e) | ((regNum >> 5) & 0x1)

		result = append(
			result,
			architecture.NewRegister(
				firstDoubleNumber+idx,
				encoding,
				fmt.Sprintf("d%d", regNum),
				architecture.DoubleFloatCategory,
				aliases...))
	}
	return result
}

// Returns the double register dN (N must be even).
func doubleReg(regNum int) *architecture.Register {
	architecture.Assert(
		regNum%2 == 0 && regNum >= 0 && regNum < 2*numDoubleRegisters,
		"invalid double register d%d",
		regNum)
	return doubles[regNum/2]
}
