package plan

import (
	"path/filepath"

	"loomc/args"
)

// driverKindByBasename enumerates the recognized argv[0] basenames and the
// kind each adopts absent any override.
var driverKindByBasename = map[string]DriverKind{
	"loom":            DriverInteractive,
	"loomc":           DriverBatch,
	"loom-frontend":   DriverFrontend,
	"loom-modulewrap": DriverModuleWrap,
}

// deriveDriverKind resolves the driver kind from argv[0]'s basename, the
// "-frontend"/"-modulewrap" escapes, and a "--driver-mode=" override
// (already stripped out of argv and passed in separately, since it must be
// recognized before the rest of argv is tokenized).
func deriveDriverKind(argv0 string, driverModeOverride string, po *args.ParsedOptions, c *collector) DriverKind {
	if driverModeOverride != "" {
		switch driverModeOverride {
		case "batch":
			return DriverBatch
		case "interactive":
			return DriverInteractive
		case "frontend":
			return DriverFrontend
		case "modulewrap":
			return DriverModuleWrap
		default:
			c.add(ErrInvalidDriverName, "invalid driver mode: %s", driverModeOverride)
			return DriverBatch
		}
	}

	if po.ContainsAny("frontend") {
		return DriverFrontend
	}
	if po.ContainsAny("modulewrap") {
		return DriverModuleWrap
	}

	base := filepath.Base(argv0)
	if kind, ok := driverKindByBasename[base]; ok {
		return kind
	}

	c.add(ErrInvalidDriverName, "invalid driver name: %s", base)
	return DriverBatch
}
