package model_test

import (
	"strings"
	"testing"

	"github.com/m-mizutani/cihooks/pkg/domain/model"
)

func TestFindPublishRoute(t *testing.T) {
	tests := []struct {
		name    string
		jobName string
		want    string
	}{
		{name: "amd release", jobName: "Build (amd_release)", want: "amd64"},
		{name: "arm release", jobName: "Build (arm_release)", want: "aarch64"},
		{name: "darwin", jobName: "Build (arm_darwin)", want: "macos-aarch64"},
		{name: "compat", jobName: "Build (arm_v80compat)", want: "aarch64v80compat"},
		{name: "amd compat", jobName: "Build (amd_compat)", want: "amd64compat"},
		{name: "musl", jobName: "Build (amd_musl)", want: "amd64musl"},
		{name: "loongarch", jobName: "Build (loongarch64)", want: "loongarch64"},
		{name: "debug build", jobName: "Build (amd_debug)", want: ""},
		{name: "test job", jobName: "Stateless tests (amd_asan, 1/2)", want: ""},
		{name: "empty", jobName: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			route := model.FindPublishRoute(tt.jobName)
			got := ""
			if route != nil {
				got = route.Segment
			}
			if got != tt.want {
				t.Errorf("FindPublishRoute(%q) = %q, want %q", tt.jobName, got, tt.want)
			}
		})
	}
}

func TestPublishRoutes_NoOverlap(t *testing.T) {
	// A job name matching one build type must not match another
	for i, a := range model.PublishRoutes {
		for j, b := range model.PublishRoutes {
			if i == j {
				continue
			}
			if strings.Contains(string(a.BuildType), string(b.BuildType)) {
				t.Errorf("build type %q contains %q", a.BuildType, b.BuildType)
			}
		}
	}
}

func TestFindPublishRoute_ReturnsCopy(t *testing.T) {
	route := model.FindPublishRoute("Build (amd_release)")
	route.Segment = "modified"

	if model.PublishRoutes[0].Segment != "amd64" {
		t.Error("routing table was modified through a returned route")
	}
}
