package integration

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gobundle/gobundle"
)

const nativeManifest = `Bundle-ManifestVersion: 2
Bundle-SymbolicName: com.example.native
Bundle-NativeCode: lib/linux-x86/http.so;
 osname=Linux;processor=x86;osversion="[1.0,3.0)",
 lib/linux-amd64/http.so;lib/linux-amd64/zlib.so;
 osname=Linux;processor=x86-64;osversion="[2.0,4.0)",
 lib/win/http.dll;osname=Win32;processor=x86
`

func TestNativeSelectionEndToEnd(t *testing.T) {
	d := parseManifest(t, nativeManifest)
	require.Len(t, d.NativeClauses(), 3)
	assert.False(t, d.NativeOptional())

	env := gobundle.NewEnvironment(map[string]string{
		"osname":    "linux",
		"processor": "amd64",
		"osversion": "2.5.0",
	})

	libs, err := d.NativeLibraries("rev-7", env)
	require.NoError(t, err)
	require.Len(t, libs, 2, "one entry per file in the selected clause")
	assert.Equal(t, "lib/linux-amd64/http.so", libs[0].File)
	assert.Equal(t, "lib/linux-amd64/zlib.so", libs[1].File)
	assert.Equal(t, "rev-7", libs[0].Revision)

	// Selection is idempotent.
	again, err := d.NativeLibraries("rev-7", env)
	require.NoError(t, err)
	assert.Equal(t, libs, again)
}

func TestNativeSelectionFloorTieBreak(t *testing.T) {
	// Both x86 clauses match a 386 environment; the amd64 clause does not.
	// (Nothing to tie-break: only one clause matches, it wins directly.)
	d := parseManifest(t, nativeManifest)

	env := gobundle.NewEnvironment(map[string]string{
		"osname":    "linux",
		"processor": "386",
		"osversion": "2.5.0",
	})

	libs, err := d.NativeLibraries("r", env)
	require.NoError(t, err)
	require.Len(t, libs, 1)
	assert.Equal(t, "lib/linux-x86/http.so", libs[0].File)
}

func TestNativeMandatoryNoMatch(t *testing.T) {
	d := parseManifest(t, nativeManifest)

	env := gobundle.NewEnvironment(map[string]string{
		"osname":    "solaris",
		"processor": "s390x",
	})

	_, err := d.NativeLibraries("r", env)
	assert.ErrorIs(t, err, gobundle.ErrNoMatchingNativeClause)
}

func TestNativeOptionalNoMatch(t *testing.T) {
	d := parseManifest(t, strings.Join([]string{
		"Bundle-NativeCode: lib/http.so;osname=Linux,*",
		"",
	}, "\n"))
	require.True(t, d.NativeOptional())

	env := gobundle.NewEnvironment(map[string]string{
		"osname":    "windows",
		"processor": "amd64",
	})

	libs, err := d.NativeLibraries("r", env)
	require.NoError(t, err)
	assert.Empty(t, libs)
}

func TestNativeSelectionFilter(t *testing.T) {
	d := parseManifest(t, strings.Join([]string{
		`Bundle-NativeCode: lib/fast.so;osname=Linux;selection-filter="props['gpu'] == 'cuda'",`,
		" lib/plain.so;osname=Linux",
		"",
	}, "\n"))

	withGPU := gobundle.NewEnvironment(map[string]string{
		"osname":    "linux",
		"processor": "amd64",
		"gpu":       "cuda",
	})
	libs, err := d.NativeLibraries("r", withGPU)
	require.NoError(t, err)
	require.Len(t, libs, 1)
	assert.Equal(t, "lib/fast.so", libs[0].File)

	withoutGPU := gobundle.NewEnvironment(map[string]string{
		"osname":    "linux",
		"processor": "amd64",
	})
	libs, err = d.NativeLibraries("r", withoutGPU)
	require.NoError(t, err)
	require.Len(t, libs, 1)
	assert.Equal(t, "lib/plain.so", libs[0].File)
}
