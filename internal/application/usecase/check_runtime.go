package usecase

import (
	"context"
	"strconv"
	"strings"

	"github.com/chanomhub/desktop/internal/application/port"
	"github.com/chanomhub/desktop/internal/logging"
)

// RuntimeLibrary is one native library the window links against.
type RuntimeLibrary struct {
	PkgConfigName string
	DisplayName   string
	MinVersion    string
}

// DefaultRuntimeLibraries are what the webkit_cgo build needs.
var DefaultRuntimeLibraries = []RuntimeLibrary{
	{PkgConfigName: "gtk4", DisplayName: "GTK4", MinVersion: "4.12"},
	{PkgConfigName: "webkitgtk-6.0", DisplayName: "WebKitGTK 6.0", MinVersion: "2.42"},
	{PkgConfigName: "glib-2.0", DisplayName: "GLib", MinVersion: "2.76"},
}

// RuntimeCheck is the result for one library.
type RuntimeCheck struct {
	RuntimeLibrary
	Installed bool
	Version   string
	OK        bool
	Error     string
}

// CheckRuntimeOutput is the doctor report.
type CheckRuntimeOutput struct {
	Prefix string
	OK     bool
	Checks []RuntimeCheck
}

// CheckRuntimeUseCase verifies the window's native libraries are present
// and recent enough.
type CheckRuntimeUseCase struct {
	probe     port.LibraryProbe
	libraries []RuntimeLibrary
}

// NewCheckRuntimeUseCase checks libraries, or DefaultRuntimeLibraries when
// none are given.
func NewCheckRuntimeUseCase(probe port.LibraryProbe, libraries ...RuntimeLibrary) *CheckRuntimeUseCase {
	if len(libraries) == 0 {
		libraries = DefaultRuntimeLibraries
	}
	return &CheckRuntimeUseCase{probe: probe, libraries: libraries}
}

// Execute probes every library. Probe failures are reported per check and
// never returned as an error.
func (uc *CheckRuntimeUseCase) Execute(ctx context.Context, prefix string) *CheckRuntimeOutput {
	log := logging.FromContext(ctx).With().Str("component", "doctor").Logger()

	out := &CheckRuntimeOutput{Prefix: prefix, OK: true}
	for _, lib := range uc.libraries {
		check := RuntimeCheck{RuntimeLibrary: lib}

		version, err := uc.probe.ModVersion(ctx, lib.PkgConfigName, prefix)
		switch {
		case err != nil:
			check.Error = err.Error()
		default:
			check.Installed = true
			check.Version = version
			cmp, ok := compareVersions(version, lib.MinVersion)
			if !ok {
				check.Error = "unparseable version"
			}
			check.OK = ok && cmp >= 0
		}

		if !check.OK {
			out.OK = false
		}
		log.Debug().
			Str("library", lib.PkgConfigName).
			Str("version", check.Version).
			Bool("ok", check.OK).
			Msg("runtime library checked")
		out.Checks = append(out.Checks, check)
	}
	return out
}

// compareVersions compares dotted numeric prefixes such as "2.44.1" and
// "2.42". Missing components count as zero.
func compareVersions(a, b string) (int, bool) {
	av, ok := numericParts(a)
	if !ok {
		return 0, false
	}
	bv, ok := numericParts(b)
	if !ok {
		return 0, false
	}
	for i := 0; i < max(len(av), len(bv)); i++ {
		var x, y int
		if i < len(av) {
			x = av[i]
		}
		if i < len(bv) {
			y = bv[i]
		}
		if x != y {
			if x > y {
				return 1, true
			}
			return -1, true
		}
	}
	return 0, true
}

func numericParts(v string) ([]int, bool) {
	v = strings.TrimSpace(v)
	if end := strings.IndexFunc(v, func(r rune) bool { return r != '.' && (r < '0' || r > '9') }); end >= 0 {
		v = v[:end]
	}
	if v == "" {
		return nil, false
	}
	fields := strings.Split(strings.TrimSuffix(v, "."), ".")
	parts := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, false
		}
		parts = append(parts, n)
	}
	return parts, true
}
