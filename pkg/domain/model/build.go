package model

import "strings"

// BuildType identifies a build variant (architecture/OS combination)
type BuildType string

const (
	BuildTypeAmdRelease   BuildType = "amd_release"
	BuildTypeArmRelease   BuildType = "arm_release"
	BuildTypeAmdDarwin    BuildType = "amd_darwin"
	BuildTypeArmDarwin    BuildType = "arm_darwin"
	BuildTypeArmV80Compat BuildType = "arm_v80compat"
	BuildTypeAmdFreeBSD   BuildType = "amd_freebsd"
	BuildTypePPC64LE      BuildType = "ppc64le"
	BuildTypeAmdCompat    BuildType = "amd_compat"
	BuildTypeAmdMusl      BuildType = "amd_musl"
	BuildTypeRISCV64      BuildType = "riscv64"
	BuildTypeS390X        BuildType = "s390x"
	BuildTypeLoongArch64  BuildType = "loongarch64"
)

// PublishRoute maps a build type to the platform segment of its static
// download location
type PublishRoute struct {
	BuildType BuildType
	Segment   string
}

// PublishRoutes is scanned in order; the first build type contained in the
// job name wins. No build type is a substring of another.
var PublishRoutes = []PublishRoute{
	{BuildType: BuildTypeAmdRelease, Segment: "amd64"},
	{BuildType: BuildTypeArmRelease, Segment: "aarch64"},
	{BuildType: BuildTypeAmdDarwin, Segment: "macos"},
	{BuildType: BuildTypeArmDarwin, Segment: "macos-aarch64"},
	{BuildType: BuildTypeArmV80Compat, Segment: "aarch64v80compat"},
	{BuildType: BuildTypeAmdFreeBSD, Segment: "freebsd"},
	{BuildType: BuildTypePPC64LE, Segment: "powerpc64le"},
	{BuildType: BuildTypeAmdCompat, Segment: "amd64compat"},
	{BuildType: BuildTypeAmdMusl, Segment: "amd64musl"},
	{BuildType: BuildTypeRISCV64, Segment: "riscv64"},
	{BuildType: BuildTypeS390X, Segment: "s390x"},
	{BuildType: BuildTypeLoongArch64, Segment: "loongarch64"},
}

// FindPublishRoute returns the first route whose build type is contained in
// jobName, or nil
func FindPublishRoute(jobName string) *PublishRoute {
	for i := range PublishRoutes {
		if strings.Contains(jobName, string(PublishRoutes[i].BuildType)) {
			route := PublishRoutes[i]
			return &route
		}
	}
	return nil
}
