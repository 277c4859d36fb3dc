package signature

import (
	"strings"

	"github.com/pattyshack/gt/parseutil"

	"github.com/pattyshack/regconfig/architecture"
)

// A call site / method signature supplied by the code generator.
type Signature struct {
	parseutil.StartEndPos

	Name string // optional

	Parameters []architecture.Kind
	Return     architecture.Kind
}

func (sig *Signature) String() string {
	builder := strings.Builder{}
	if sig.Name != "" {
		builder.WriteString(sig.Name)
		builder.WriteString(": ")
	}

	builder.WriteString("(")
	for idx, param := range sig.Parameters {
		if idx > 0 {
			builder.WriteString(", ")
		}
		builder.WriteString(param.String())
	}
	builder.WriteString(") ")
	builder.WriteString(sig.Return.String())

	return builder.String()
}
