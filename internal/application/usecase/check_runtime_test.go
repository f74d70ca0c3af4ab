package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/chanomhub/desktop/internal/application/port"
	"github.com/chanomhub/desktop/internal/application/port/mocks"
)

func TestCheckRuntimeUseCase_AllPresent(t *testing.T) {
	probe := mocks.NewMockLibraryProbe(t)
	probe.EXPECT().ModVersion(mock.Anything, "gtk4", "/opt/gnome").Return("4.16.2", nil).Once()
	probe.EXPECT().ModVersion(mock.Anything, "webkitgtk-6.0", "/opt/gnome").Return("2.42", nil).Once()
	probe.EXPECT().ModVersion(mock.Anything, "glib-2.0", "/opt/gnome").Return("2.82.0", nil).Once()

	out := NewCheckRuntimeUseCase(probe).Execute(context.Background(), "/opt/gnome")

	assert.True(t, out.OK)
	assert.Equal(t, "/opt/gnome", out.Prefix)
	require.Len(t, out.Checks, 3)
	for _, c := range out.Checks {
		assert.True(t, c.Installed, c.PkgConfigName)
		assert.True(t, c.OK, c.PkgConfigName)
	}
}

func TestCheckRuntimeUseCase_MissingAndOld(t *testing.T) {
	probe := mocks.NewMockLibraryProbe(t)
	libs := []RuntimeLibrary{
		{PkgConfigName: "webkitgtk-6.0", DisplayName: "WebKitGTK 6.0", MinVersion: "2.42"},
		{PkgConfigName: "gtk4", DisplayName: "GTK4", MinVersion: "4.12"},
	}
	probe.EXPECT().ModVersion(mock.Anything, "webkitgtk-6.0", "").
		Return("", &port.LibraryProbeError{Library: "webkitgtk-6.0", Err: port.ErrLibraryMissing}).Once()
	probe.EXPECT().ModVersion(mock.Anything, "gtk4", "").Return("4.10.5", nil).Once()

	out := NewCheckRuntimeUseCase(probe, libs...).Execute(context.Background(), "")

	assert.False(t, out.OK)
	require.Len(t, out.Checks, 2)
	assert.False(t, out.Checks[0].Installed)
	assert.Contains(t, out.Checks[0].Error, "library not found")
	assert.True(t, out.Checks[1].Installed)
	assert.False(t, out.Checks[1].OK)
	assert.Equal(t, "4.10.5", out.Checks[1].Version)
}

func TestCompareVersions(t *testing.T) {
	tests := []struct {
		a, b string
		cmp  int
		ok   bool
	}{
		{"2.44.1", "2.42", 1, true},
		{"2.42", "2.42.0", 0, true},
		{"4.10", "4.12", -1, true},
		{"4.14.2-rc1", "4.14", 1, true},
		{"abc", "1.0", 0, false},
		{"", "1.0", 0, false},
	}
	for _, tt := range tests {
		cmp, ok := compareVersions(tt.a, tt.b)
		assert.Equal(t, tt.ok, ok, "%s vs %s", tt.a, tt.b)
		if tt.ok {
			assert.Equal(t, tt.cmp, cmp, "%s vs %s", tt.a, tt.b)
		}
	}
}
