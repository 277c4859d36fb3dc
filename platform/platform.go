package platform

type ArchitectureName string
type OperatingSystemName string

const (
	Sparcv9 = ArchitectureName("sparcv9")

	Linux   = OperatingSystemName("linux")
	Solaris = OperatingSystemName("solaris")
)

type Platform interface {
	ArchitectureName() ArchitectureName
	OperatingSystemName() OperatingSystemName

	// In bytes.
	WordSize() int

	RegisterConfig() RegisterConfig
}
